package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"

	"phonon-hexfmt/internal/utils"
)

const (
	usageInput  = "please provide hexstring as argument in the following format: 02b4632d08485ff1df2db55b9dafd23347d1c47a457072a1e87be26896549a8737"
	usageOutput = "it will be converted into this output format: ['0x02', '0xb4', '0x63', '0x2d', '0x08', '0x48', '0x5f', '0xf1', '0xdf', '0x2d', '0xb5', '0x5b', '0x9d', '0xaf', '0xd2', '0x33', '0x47', '0xd1', '0xc4', '0x7a', '0x45', '0x70', '0x72', '0xa1', '0xe8', '0x7b', '0xe2', '0x68', '0x96', '0x54', '0x9a', '0x87', '0x37']"
)

// ErrMissingArgument is returned by Run when no hex string was given.
var ErrMissingArgument = errors.New("missing hexstring argument")

// Run formats args[0] as a list of byte literals and writes it, followed by
// the token count, to stdout. args excludes the program name; arguments past
// the first are ignored.
//
// The returned code is the process exit status. Without an argument Run
// writes the usage text to stdout and returns 1 with ErrMissingArgument.
func Run(ctx context.Context, args []string, stdout io.Writer) (int, error) {
	if len(args) < 1 {
		if err := printUsage(stdout); err != nil {
			return 1, err
		}
		return 1, ErrMissingArgument
	}

	input := args[0]
	tokens := utils.ByteLiterals(input)
	slog.DebugContext(ctx, "tokenized input",
		"input_len", len(input),
		"tokens", len(tokens),
		"ignored_args", len(args)-1,
	)

	if _, err := fmt.Fprintln(stdout, utils.FormatList(tokens)); err != nil {
		return 1, errors.Wrap(err, "write token list")
	}
	if _, err := fmt.Fprintln(stdout, utils.FormatLength(len(tokens))); err != nil {
		return 1, errors.Wrap(err, "write token count")
	}
	return 0, nil
}

func printUsage(w io.Writer) error {
	if _, err := fmt.Fprintln(w, usageInput); err != nil {
		return errors.Wrap(err, "write usage")
	}
	if _, err := fmt.Fprintln(w, usageOutput); err != nil {
		return errors.Wrap(err, "write usage")
	}
	return nil
}
