package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net"
	"net/http"
	"os"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/vango-dev/vbind/internal/config"
	"github.com/vango-dev/vbind/internal/preview"
	"github.com/vango-dev/vbind/pkg/dom"
)

type profile struct {
	Name     string
	Clients  int
	Steps    int
	Interval time.Duration
}

var profiles = map[string]profile{
	"fast":     {Name: "fast", Clients: 10, Steps: 50, Interval: 20 * time.Millisecond},
	"standard": {Name: "standard", Clients: 100, Steps: 200, Interval: 10 * time.Millisecond},
	"stress":   {Name: "stress", Clients: 500, Steps: 500, Interval: 5 * time.Millisecond},
}

type benchConfig struct {
	Profile    string
	Clients    int
	Steps      int
	Interval   time.Duration
	JSONOutput string
}

type benchCounters struct {
	frames  atomic.Uint64
	bytes   atomic.Uint64
	patches atomic.Uint64
}

type benchErrors struct {
	handshakeFailures atomic.Uint64
	decodeFailures    atomic.Uint64
	outOfOrder        atomic.Uint64
}

type patchOpCounts struct {
	counts [256]atomic.Uint64
}

func (p *patchOpCounts) add(op dom.PatchOp) {
	p.counts[uint8(op)].Add(1)
}

func (p *patchOpCounts) snapshot() map[string]uint64 {
	out := make(map[string]uint64)
	for i := range p.counts {
		count := p.counts[i].Load()
		if count == 0 {
			continue
		}
		name := dom.PatchOp(uint8(i)).String()
		if name == "Unknown" {
			name = fmt.Sprintf("0x%02x", i)
		}
		out[name] = count
	}
	return out
}

func benchCmd() *cobra.Command {
	cfg := benchConfig{Profile: "fast"}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure patch fan-out to preview clients",
		Long: `Run the preview server in-process, connect websocket clients and
step the demo, measuring how long each batch takes to reach a client
and decode.

Profiles: fast, standard, stress. Flags override profile values.

Examples:
  vbind bench
  vbind bench --profile=stress
  vbind bench --clients=50 --steps=100 --json=-`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := profiles[cfg.Profile]
			if !ok {
				return fmt.Errorf("unknown profile %q", cfg.Profile)
			}
			if !cmd.Flags().Changed("clients") {
				cfg.Clients = p.Clients
			}
			if !cmd.Flags().Changed("steps") {
				cfg.Steps = p.Steps
			}
			if !cmd.Flags().Changed("interval") {
				cfg.Interval = p.Interval
			}
			if cfg.Clients <= 0 || cfg.Steps <= 0 || cfg.Interval <= 0 {
				return fmt.Errorf("clients, steps and interval must be positive")
			}

			report, err := runBench(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			writeSummary(os.Stdout, report)
			if cfg.JSONOutput != "" {
				return writeJSON(cfg.JSONOutput, report)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.Profile, "profile", cfg.Profile, "Workload profile: fast, standard, stress")
	cmd.Flags().IntVar(&cfg.Clients, "clients", 0, "Number of websocket clients")
	cmd.Flags().IntVar(&cfg.Steps, "steps", 0, "Number of demo steps")
	cmd.Flags().DurationVar(&cfg.Interval, "interval", 0, "Delay between steps")
	cmd.Flags().StringVar(&cfg.JSONOutput, "json", "", "Write a JSON report to this path (- for stdout)")

	return cmd
}

func runBench(ctx context.Context, cfg benchConfig) (benchReport, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	pcfg := config.New()
	pcfg.Metrics.Enabled = false
	srv := preview.New(pcfg, preview.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return benchReport{}, err
	}
	httpSrv := &http.Server{Handler: srv.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go httpSrv.Serve(ln)
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Hub().Close()
		httpSrv.Shutdown(sctx)
	}()

	var (
		counters  benchCounters
		errs      benchErrors
		ops       patchOpCounts
		stepStart atomic.Int64
		samplesMu sync.Mutex
		samples   = make([]time.Duration, 0, cfg.Clients*cfg.Steps)
		wg        sync.WaitGroup
	)

	url := "ws://" + ln.Addr().String() + "/ws"
	var conns []*websocket.Conn
	for i := 0; i < cfg.Clients; i++ {
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
		if err != nil {
			errs.handshakeFailures.Add(1)
			continue
		}
		if _, _, err := conn.ReadMessage(); err != nil {
			errs.handshakeFailures.Add(1)
			conn.Close()
			continue
		}
		conns = append(conns, conn)

		wg.Add(1)
		go func(conn *websocket.Conn) {
			defer wg.Done()
			var last uint64
			for {
				_, data, err := conn.ReadMessage()
				if err != nil {
					return
				}
				batch, err := dom.DecodeBatch(data)
				if err != nil {
					errs.decodeFailures.Add(1)
					continue
				}
				rtt := time.Duration(time.Now().UnixNano() - stepStart.Load())
				if batch.Seq <= last {
					errs.outOfOrder.Add(1)
				}
				last = batch.Seq

				counters.frames.Add(1)
				counters.bytes.Add(uint64(len(data)))
				counters.patches.Add(uint64(len(batch.Patches)))
				for _, p := range batch.Patches {
					ops.add(p.Op)
				}
				samplesMu.Lock()
				samples = append(samples, rtt)
				samplesMu.Unlock()
			}
		}(conn)
	}
	if len(conns) == 0 {
		return benchReport{}, fmt.Errorf("no clients connected to %s", url)
	}

	var memBefore, memAfter runtime.MemStats
	runtime.ReadMemStats(&memBefore)
	start := time.Now()

	for i := 0; i < cfg.Steps; i++ {
		if ctx.Err() != nil {
			break
		}
		stepStart.Store(time.Now().UnixNano())
		srv.Step(ctx)
		time.Sleep(cfg.Interval)
	}

	want := uint64(len(conns) * cfg.Steps)
	deadline := time.Now().Add(2 * time.Second)
	for counters.frames.Load() < want && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	elapsed := time.Since(start)
	runtime.ReadMemStats(&memAfter)

	for _, c := range conns {
		c.Close()
	}
	wg.Wait()

	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return buildReport(cfg, len(conns), elapsed, samples, &counters, &errs, &ops, memBefore, memAfter), nil
}

func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[len(sorted)-1]
	}
	idx := int(math.Ceil(float64(len(sorted))*p)) - 1
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}

func avgPause(after, before runtime.MemStats) time.Duration {
	gcCount := after.NumGC - before.NumGC
	if gcCount == 0 {
		return 0
	}
	return time.Duration((after.PauseTotalNs - before.PauseTotalNs) / uint64(gcCount))
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

type benchReport struct {
	Version    string         `json:"version"`
	Workload   workloadInfo   `json:"workload"`
	LatencyMS  latencyInfo    `json:"latency_ms"`
	Throughput throughputInfo `json:"throughput"`
	GC         gcInfo         `json:"gc"`
	Protocol   protocolInfo   `json:"protocol"`
	Errors     errorInfo      `json:"errors"`
}

type workloadInfo struct {
	Profile    string  `json:"profile"`
	Clients    int     `json:"clients"`
	Connected  int     `json:"connected"`
	Steps      int     `json:"steps"`
	IntervalMS float64 `json:"interval_ms"`
}

type latencyInfo struct {
	Min float64 `json:"min"`
	P50 float64 `json:"p50"`
	P95 float64 `json:"p95"`
	P99 float64 `json:"p99"`
	Max float64 `json:"max"`
}

type throughputInfo struct {
	Frames       uint64  `json:"frames"`
	FramesPerSec float64 `json:"frames_per_sec"`
	ElapsedMS    float64 `json:"elapsed_ms"`
}

type gcInfo struct {
	AllocMB    float64 `json:"alloc_mb"`
	NumGC      uint32  `json:"num_gc"`
	PauseAvgMS float64 `json:"pause_avg_ms"`
}

type protocolInfo struct {
	AvgFrameBytes   float64           `json:"avg_frame_bytes"`
	PatchesPerFrame float64           `json:"patches_per_frame"`
	PatchOps        map[string]uint64 `json:"patch_ops"`
}

type errorInfo struct {
	HandshakeFailures uint64 `json:"handshake_failures"`
	DecodeFailures    uint64 `json:"decode_failures"`
	OutOfOrder        uint64 `json:"out_of_order"`
	MissingFrames     uint64 `json:"missing_frames"`
}

func buildReport(
	cfg benchConfig,
	connected int,
	elapsed time.Duration,
	samples []time.Duration,
	counters *benchCounters,
	errs *benchErrors,
	ops *patchOpCounts,
	before, after runtime.MemStats,
) benchReport {
	frames := counters.frames.Load()
	report := benchReport{
		Version: version,
		Workload: workloadInfo{
			Profile:    cfg.Profile,
			Clients:    cfg.Clients,
			Connected:  connected,
			Steps:      cfg.Steps,
			IntervalMS: ms(cfg.Interval),
		},
		LatencyMS: latencyInfo{
			Min: ms(percentile(samples, 0)),
			P50: ms(percentile(samples, 0.50)),
			P95: ms(percentile(samples, 0.95)),
			P99: ms(percentile(samples, 0.99)),
			Max: ms(percentile(samples, 1)),
		},
		Throughput: throughputInfo{
			Frames:    frames,
			ElapsedMS: ms(elapsed),
		},
		GC: gcInfo{
			AllocMB:    float64(after.TotalAlloc-before.TotalAlloc) / (1024 * 1024),
			NumGC:      after.NumGC - before.NumGC,
			PauseAvgMS: ms(avgPause(after, before)),
		},
		Protocol: protocolInfo{
			PatchOps: ops.snapshot(),
		},
		Errors: errorInfo{
			HandshakeFailures: errs.handshakeFailures.Load(),
			DecodeFailures:    errs.decodeFailures.Load(),
			OutOfOrder:        errs.outOfOrder.Load(),
		},
	}
	if elapsed > 0 {
		report.Throughput.FramesPerSec = float64(frames) / elapsed.Seconds()
	}
	if frames > 0 {
		report.Protocol.AvgFrameBytes = float64(counters.bytes.Load()) / float64(frames)
		report.Protocol.PatchesPerFrame = float64(counters.patches.Load()) / float64(frames)
	}
	if want := uint64(connected * cfg.Steps); frames < want {
		report.Errors.MissingFrames = want - frames
	}
	return report
}

func writeSummary(w io.Writer, report benchReport) {
	fmt.Fprintln(w, "=== vbind fan-out benchmark ===")
	fmt.Fprintf(w, "Profile: %s\n", report.Workload.Profile)
	fmt.Fprintf(w, "Clients: %d (%d connected)\n", report.Workload.Clients, report.Workload.Connected)
	fmt.Fprintf(w, "Steps: %d every %.1f ms\n", report.Workload.Steps, report.Workload.IntervalMS)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Frames: %d (%.1f/s)\n", report.Throughput.Frames, report.Throughput.FramesPerSec)
	fmt.Fprintf(w, "Missing frames: %d\n", report.Errors.MissingFrames)
	fmt.Fprintln(w)

	if report.LatencyMS.Max == 0 {
		fmt.Fprintln(w, "No latency samples recorded.")
	} else {
		fmt.Fprintln(w, "Latency (step start -> client receive+decode):")
		fmt.Fprintf(w, "  min: %.2f ms\n", report.LatencyMS.Min)
		fmt.Fprintf(w, "  p50: %.2f ms\n", report.LatencyMS.P50)
		fmt.Fprintf(w, "  p95: %.2f ms\n", report.LatencyMS.P95)
		fmt.Fprintf(w, "  p99: %.2f ms\n", report.LatencyMS.P99)
		fmt.Fprintf(w, "  max: %.2f ms\n", report.LatencyMS.Max)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Protocol (avg per frame):")
	fmt.Fprintf(w, "  bytes:   %.1f\n", report.Protocol.AvgFrameBytes)
	fmt.Fprintf(w, "  patches: %.2f\n", report.Protocol.PatchesPerFrame)
	ops := make([]string, 0, len(report.Protocol.PatchOps))
	for op := range report.Protocol.PatchOps {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	for _, op := range ops {
		fmt.Fprintf(w, "  %-12s %d\n", op, report.Protocol.PatchOps[op])
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Go runtime / GC (process-wide):")
	fmt.Fprintf(w, "  alloc:    %.2f MB\n", report.GC.AllocMB)
	fmt.Fprintf(w, "  num_gc:   %d\n", report.GC.NumGC)
	fmt.Fprintf(w, "  gc_pause: %.2f ms (avg)\n", report.GC.PauseAvgMS)
}

func writeJSON(path string, report benchReport) error {
	var out io.Writer
	if path == "-" {
		out = os.Stdout
	} else {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
