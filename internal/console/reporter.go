package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/veranemoloko/cssgrab/internal/domain"
)

// Reporter prints run status for the operator.
type Reporter struct {
	out io.Writer

	info    *color.Color
	notice  *color.Color
	success *color.Color
	failure *color.Color
	errLbl  *color.Color
}

// NewReporter writes to out. Colors are used only when colored is set.
func NewReporter(out io.Writer, colored bool) *Reporter {
	r := &Reporter{
		out:     out,
		info:    color.New(color.FgGreen, color.Bold),
		notice:  color.New(color.FgYellow, color.Bold),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		errLbl:  color.New(color.FgRed, color.Bold),
	}

	for _, c := range []*color.Color{r.info, r.notice, r.success, r.failure, r.errLbl} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return r
}

// ColorEnabled reports whether out is a terminal that should get colors.
func ColorEnabled(out io.Writer, noColor bool) bool {
	if noColor {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r *Reporter) Info(format string, args ...interface{}) {
	r.info.Fprintf(r.out, "\n"+format+"\n", args...)
}

func (r *Reporter) Notice(format string, args ...interface{}) {
	r.notice.Fprintf(r.out, "\n"+format+"\n", args...)
}

func (r *Reporter) Success(format string, args ...interface{}) {
	r.success.Fprintf(r.out, format+"\n", args...)
}

func (r *Reporter) Failure(format string, args ...interface{}) {
	r.failure.Fprintf(r.out, format+"\n", args...)
}

// Error prints err as a single line.
func (r *Reporter) Error(err error) {
	r.errLbl.Fprint(r.out, "Error:")
	fmt.Fprintf(r.out, " %s\n", oneLine(err.Error()))
}

func (r *Reporter) Outcome(o domain.DownloadOutcome) {
	if o.IsSaved() {
		r.Success("✓ Saved: %s", filepathBase(o.Path))
		return
	}
	r.Failure("✗ Failed to download %s: %s", o.URL, oneLine(o.Reason))
}

func (r *Reporter) Summary(s domain.Summary) {
	r.Info("Download finished: %d saved, %d failed, %d bytes", s.Saved, s.Failed, s.Bytes)
}
