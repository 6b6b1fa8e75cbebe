// chaintrace plots the convergence trace of an MCMC chain file: every
// parameter column normalized by its final value, against iteration
// number. By default it opens a window; with -out it writes a PNG
// headlessly instead.
package main

import (
	"flag"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/rhaas80/MCMC-BHPIRE/src/mcmc"
	"github.com/rhaas80/MCMC-BHPIRE/src/render"
	"github.com/rhaas80/MCMC-BHPIRE/src/viewer"
)

func main() {
	var (
		file     string
		out      string
		watch    bool
		logLevel string
	)
	flag.StringVar(&file, "file", "chains.dat", "whitespace-delimited MCMC chain matrix")
	flag.StringVar(&out, "out", "", "write the chart as PNG to this path instead of opening a window")
	flag.BoolVar(&watch, "watch", false, "re-render when the chain file changes (window mode only)")
	flag.StringVar(&logLevel, "loglevel", "info", "log level: debug|info|warn|error")
	flag.Parse()
	mcmc.SetLogLevel(logLevel)

	draw := func() (image.Image, error) {
		defer mcmc.TimeTrack(time.Now(), "trace render")
		m, err := mcmc.LoadMatrix(file)
		if err != nil {
			return nil, err
		}
		mcmc.Debugf("loaded %d iterations of %d parameters from %s", m.Rows, m.Cols, file)
		return render.TraceChart(m, 1100, 500)
	}

	if out != "" {
		img, err := draw()
		if err != nil {
			mcmc.Errorf("%v", err)
			os.Exit(1)
		}
		if err := render.WritePNG(out, img); err != nil {
			mcmc.Errorf("%v", err)
			os.Exit(1)
		}
		mcmc.Infof("wrote %s", out)
		return
	}

	watchPath := ""
	if watch {
		watchPath = file
	}
	if err := viewer.Show("Chain Trace – "+filepath.Base(file), draw, watchPath); err != nil {
		mcmc.Errorf("%v", err)
		os.Exit(1)
	}
}
