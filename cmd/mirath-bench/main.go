// Command mirath-bench sweeps every registered params_tag (today just
// 0x01) and charts signature size and sign/verify wall-clock with
// go-echarts, continuing cmd/analysis/main.go's histogram-page pattern.
// Ambient developer tooling: it is not part of the signed/verified core.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"mirath-rx/internal/mparams"
	"mirath-rx/mirath"
)

type sweepRow struct {
	tag      byte
	signMS   float64
	verifyMS float64
	sigBytes int
}

func runSweep() []sweepRow {
	var rows []sweepRow
	for _, tag := range []byte{mparams.TagBaseline} {
		ps, err := mparams.Lookup(tag)
		if err != nil {
			log.Printf("mirath-bench: skipping tag 0x%02x: %v", tag, err)
			continue
		}
		pk, sk, err := mirath.GenerateKeyPair(ps, rand.Reader)
		if err != nil {
			log.Printf("mirath-bench: keygen for tag 0x%02x: %v", tag, err)
			continue
		}
		msg := []byte("mirath-bench sweep message")

		start := time.Now()
		sig, err := mirath.Sign(sk, msg, rand.Reader)
		signMS := float64(time.Since(start).Microseconds()) / 1000.0
		if err != nil {
			log.Printf("mirath-bench: sign for tag 0x%02x: %v", tag, err)
			continue
		}

		start = time.Now()
		ok := mirath.Verify(pk, msg, sig)
		verifyMS := float64(time.Since(start).Microseconds()) / 1000.0
		if !ok {
			log.Printf("mirath-bench: self-signed signature failed to verify for tag 0x%02x", tag)
			continue
		}

		rows = append(rows, sweepRow{
			tag:      tag,
			signMS:   signMS,
			verifyMS: verifyMS,
			sigBytes: len(sig.Bytes()),
		})
	}
	return rows
}

func newSweepChart(rows []sweepRow) *charts.Bar {
	labels := make([]string, len(rows))
	signSeries := make([]opts.BarData, len(rows))
	verifySeries := make([]opts.BarData, len(rows))
	sizeSeries := make([]opts.BarData, len(rows))
	for i, r := range rows {
		labels[i] = fmt.Sprintf("0x%02x", r.tag)
		signSeries[i] = opts.BarData{Value: r.signMS}
		verifySeries[i] = opts.BarData{Value: r.verifyMS}
		sizeSeries[i] = opts.BarData{Value: r.sigBytes}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Mirath-RX params_tag sweep", Subtitle: "sign/verify wall-clock (ms) and signature size (bytes)"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "mirath-bench", Width: "1000px", Height: "500px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("sign_ms", signSeries).
		AddSeries("verify_ms", verifySeries).
		AddSeries("sig_bytes", sizeSeries)
	return bar
}

func main() {
	out := flag.String("out", "mirath-bench.html", "output HTML path")
	flag.Parse()

	rows := runSweep()
	if len(rows) == 0 {
		log.Fatal("mirath-bench: no parameter set produced a usable sweep row")
	}
	for _, r := range rows {
		fmt.Printf("tag=0x%02x sign=%.2fms verify=%.2fms sig=%dB\n", r.tag, r.signMS, r.verifyMS, r.sigBytes)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("mirath-bench: creating %s: %v", *out, err)
	}
	defer f.Close()
	if err := newSweepChart(rows).Render(f); err != nil {
		log.Fatalf("mirath-bench: rendering chart: %v", err)
	}
	fmt.Println("sweep chart:", *out)
}
