package model

import (
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
)

// Bar tracks finished games on a terminal.
type Bar progressbar.ProgressBar

func NewBar(len int, description string) *Bar {
	return NewBarTo(os.Stderr, len, description)
}

func NewBarTo(w io.Writer, len int, description string) *Bar {
	return (*Bar)(progressbar.NewOptions(len,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	))
}

func (b *Bar) Goto(i int) {
	_ = (*progressbar.ProgressBar)(b).Set(i)
}

// Describe replaces the text in front of the bar, red once anything failed.
func (b *Bar) Describe(description string, failed bool) {
	if failed {
		description = aurora.Red(description).String()
	}
	(*progressbar.ProgressBar)(b).Describe(description)
}

func (b *Bar) Close() {
	_ = (*progressbar.ProgressBar)(b).Finish()
	_ = (*progressbar.ProgressBar)(b).Close()
}
