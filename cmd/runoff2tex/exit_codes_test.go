package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	runoff2tex "github.com/alnah/go-runoff2tex"
	"github.com/alnah/go-runoff2tex/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"unexpected", errors.New("boom"), ExitGeneral},
		{"missing file", os.ErrNotExist, ExitIO},
		{"open input", fmt.Errorf("%w: nope", ErrOpenInput), ExitIO},
		{"create output", fmt.Errorf("%w: nope", ErrCreateOutput), ExitIO},
		{"stream read", fmt.Errorf("%w: eof mid-read", runoff2tex.ErrReadInput), ExitIO},
		{"stream write", fmt.Errorf("%w: pipe", runoff2tex.ErrWriteOutput), ExitIO},
		{"bad binding", fmt.Errorf("%w: x", ErrBadFlagBinding), ExitUsage},
		{"bad policy", fmt.Errorf("%w: x", ErrBadPolicy), ExitUsage},
		{"config missing", fmt.Errorf("loading config: %w", config.ErrConfigNotFound), ExitUsage},
		{"config parse", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},
		{"document class", fmt.Errorf("%w: {", runoff2tex.ErrInvalidDocumentClass), ExitUsage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
