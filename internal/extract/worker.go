// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

// RunWorker is the body of the extract-worker subprocess: document
// bytes on stdin, structural ExtractionResult as JSON on stdout. Any
// error (or a crash, or a hang) is the parent coordinator's problem;
// it falls back to the next tier.
func RunWorker(formatName string, stdin io.Reader, stdout io.Writer) error {
	format, err := types.ParseFormat(formatName)
	if err != nil {
		return err
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	res, err := Structural(data, format)
	if err != nil {
		return err
	}

	return json.NewEncoder(stdout).Encode(res)
}
