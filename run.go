package gorpn

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Driver feeds a line-oriented stream to a Calculator. Results go to
// out, one decimal per line; evaluation failures go to the logger with
// the input line number and do not stop the run.
type Driver struct {
	calc   *Calculator
	out    io.Writer
	logger zerolog.Logger
}

func NewDriver(out io.Writer, logger zerolog.Logger, verbose bool) *Driver {
	return &Driver{
		calc:   New(verbose, WithLogger(logger)),
		out:    out,
		logger: logger,
	}
}

// Run evaluates every line of r in order. A read error ends the run
// and is returned.
func (d *Driver) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		ret, err := d.calc.Eval(scanner.Text())
		if err != nil {
			d.logger.Error().Int("line", n).Msg(err.Error())
			continue
		}
		fmt.Fprintln(d.out, ret)
	}
	return scanner.Err()
}
