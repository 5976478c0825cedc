package session

import (
	"fmt"
	"io"
	"time"

	"github.com/common-nighthawk/go-figure"
)

const bannerFont = "block"

func printBanner(out io.Writer, now time.Time) {
	fmt.Fprintln(out, figure.NewFigure("FX", bannerFont, true).String())
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Exchange Rate Calculator and Plotter")
	fmt.Fprintln(out)
	fmt.Fprintln(out, now.Format(dateLayout))
}
