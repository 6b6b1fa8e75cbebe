// cornerplot renders the pairwise-posterior corner plot of the
// six-parameter two-Gaussian fit from an MCMC chain file and writes it
// as a PNG. Marginal summaries are logged per parameter.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rhaas80/MCMC-BHPIRE/src/mcmc"
	"github.com/rhaas80/MCMC-BHPIRE/src/render"
)

func main() {
	var (
		file     string
		out      string
		burnin   int
		bins     int
		logLevel string
	)
	flag.StringVar(&file, "file", "chains.dat", "whitespace-delimited MCMC chain matrix")
	flag.StringVar(&out, "out", "cornerplot.png", "output image path (overwritten if present)")
	flag.IntVar(&burnin, "burnin", 0, "number of leading chain rows to discard")
	flag.IntVar(&bins, "bins", 25, "histogram bins per axis")
	flag.StringVar(&logLevel, "loglevel", "info", "log level: debug|info|warn|error")
	flag.Parse()
	mcmc.SetLogLevel(logLevel)

	if err := run(file, out, burnin, bins); err != nil {
		mcmc.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(file, out string, burnin, bins int) error {
	defer mcmc.TimeTrack(time.Now(), "corner plot")
	m, err := mcmc.LoadMatrix(file)
	if err != nil {
		return err
	}
	m, err = m.Discard(burnin)
	if err != nil {
		return err
	}
	mcmc.Debugf("using %d samples of %d parameters from %s", m.Rows, m.Cols, file)

	if m.Cols == len(render.CornerLabels) {
		for i, label := range render.CornerLabels {
			mcmc.Infof("%s", mcmc.Summarize(m.Column(i)).Title(label))
		}
	}

	img, err := render.CornerPlot(m, render.CornerLabels, bins)
	if err != nil {
		return err
	}
	if err := render.WritePNG(out, img); err != nil {
		return err
	}
	mcmc.Infof("wrote %s", out)
	return nil
}
