package cofre

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// this file contains the whole-document import/export path. Import replaces
// the entire state from an externally supplied file; it is all-or-nothing.

// Export writes the full state document to w in the canonical flat shape.
func Export(w io.Writer, l *Ledger) error {
	return EncodeDocument(w, l)
}

// Import reads a full state document from r and returns the ledger it
// describes. Besides the canonical flat shape it accepts legacy exports
// that nest the whole state under a top-level "data" property; the wrapper
// is detected by probing the parsed object. A document that fails the
// strict parse is rejected wholesale and no state is returned.
func Import(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read import: %w", err)
	}

	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, &ParseError{Reason: "import is not valid JSON", Cause: err}
	}

	// Legacy exports wrap the state: {"data": {"transactions": ...}}.
	if nested, err := jsonpath.Get("$.data.transactions", jobj); err == nil && nested != nil {
		inner, err := jsonpath.Get("$.data", jobj)
		if err != nil {
			return nil, &ParseError{Reason: "could not extract legacy data wrapper", Cause: err}
		}
		data, err = json.Marshal(inner)
		if err != nil {
			return nil, &ParseError{Reason: "could not re-encode legacy data wrapper", Cause: err}
		}
	}

	return DecodeDocument(bytes.NewReader(data))
}
