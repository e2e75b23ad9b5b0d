package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Operation names a calculation that can be requested by name.
type Operation string

// Operations accepted by Run.
const (
	OpProperties       Operation = "properties"
	OpLaplace          Operation = "laplace"
	OpInverse          Operation = "inverse"
	OpInverseNonCausal Operation = "inverse-noncausal"
	OpConvolve         Operation = "convolve"
	OpLTI              Operation = "lti"
)

// ErrUnknownOperation is returned for an operation name Run does not know.
var ErrUnknownOperation = errors.New("unknown operation")

// Request is one named calculation with its arguments.
type Request struct {
	Op   Operation
	Args []string
}

// ParseRequest reads a tab-separated "operation<TAB>argument..." line.
func ParseRequest(line string) (Request, error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
	op := Operation(strings.ToLower(strings.TrimSpace(fields[0])))
	if op == "" {
		return Request{}, fmt.Errorf("%w: empty operation", ErrUnknownOperation)
	}
	return Request{Op: op, Args: fields[1:]}, nil
}

func (r Request) arg(i int) string {
	if i < len(r.Args) {
		return r.Args[i]
	}
	return ""
}

// Run dispatches req to the matching calculator operation.
func Run(ctx context.Context, calc Calculator, req Request) (any, error) {
	switch req.Op {
	case OpProperties:
		return calc.AnalyzeProperties(ctx, req.arg(0))
	case OpLaplace:
		return calc.ForwardTransform(ctx, req.arg(0))
	case OpInverse:
		return calc.InverseTransform(ctx, req.arg(0), true)
	case OpInverseNonCausal:
		return calc.InverseTransform(ctx, req.arg(0), false)
	case OpConvolve:
		return calc.Convolve(ctx, req.arg(0), req.arg(1))
	case OpLTI:
		return calc.AnalyzeLTI(ctx, req.arg(0))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, req.Op)
	}
}
