// modelviz compares the fitter's model predictions with the measured
// visibility amplitudes: error-barred data and model markers against
// baseline length on a log amplitude axis. With -chains the final
// chain sample is re-evaluated through the two-Gaussian model at the
// observed (u,v) points and overlaid as a third series.
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
	"github.com/rhaas80/MCMC-BHPIRE/src/visdata"
)

func main() {
	var (
		file     string
		out      string
		chains   string
		logLevel string
	)
	flag.StringVar(&file, "file", "model.dat", "model-comparison table (CSV with uCo,vCo,VisAmp,Sigma,Model)")
	flag.StringVar(&out, "out", "", "write the chart as PNG to this path instead of opening a window")
	flag.StringVar(&chains, "chains", "", "chain file; overlay amplitudes recomputed from its final sample")
	flag.StringVar(&logLevel, "loglevel", "info", "log level: debug|info|warn|error")
	flag.Parse()
	mcmc.SetLogLevel(logLevel)

	draw := func() (image.Image, error) {
		defer mcmc.TimeTrack(time.Now(), "model render")
		t, err := visdata.Load(file)
		if err != nil {
			return nil, err
		}
		mcmc.Debugf("loaded %d observations from %s", t.Len(), file)

		var refit []float64
		if chains != "" {
			m, err := mcmc.LoadMatrix(chains)
			if err != nil {
				return nil, err
			}
			p, err := mcmc.ParamsFromSample(m.Row(m.Rows - 1))
			if err != nil {
				return nil, err
			}
			refit = make([]float64, t.Len())
			for i := range refit {
				refit[i] = p.Amplitude(t.U[i], t.V[i])
			}
			mcmc.Debugf("refit overlay from final sample of %s", chains)
		}
		return render.ModelChart(t, refit, 1100, 600)
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

	if err := viewer.Show("Model vs Data – "+filepath.Base(file), draw, ""); err != nil {
		mcmc.Errorf("%v", err)
		os.Exit(1)
	}
}
