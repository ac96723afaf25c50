// Command healthprobe checks the server's /healthz endpoint and exits 0
// when it answers 200, non-zero otherwise. Intended as a container
// healthcheck command.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/valyala/fasthttp"
)

func main() {
	target := flag.String("target", "http://127.0.0.1:8080/healthz", "health endpoint URL to probe")
	timeout := flag.Duration("timeout", 3*time.Second, "per-attempt request timeout")
	attempts := flag.Int("attempts", 1, "number of attempts before giving up")
	interval := flag.Duration("interval", time.Second, "wait between attempts")
	flag.Parse()

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)
	req.SetRequestURI(*target)
	req.Header.SetMethod(fasthttp.MethodGet)

	var lastErr error
	for i := 0; i < *attempts; i++ {
		if i > 0 {
			time.Sleep(*interval)
		}
		if err := fasthttp.DoTimeout(req, resp, *timeout); err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode() == fasthttp.StatusOK {
			fmt.Printf("ok: %s %d %s\n", *target, resp.StatusCode(), resp.Body())
			return
		}
		lastErr = fmt.Errorf("status %d", resp.StatusCode())
	}

	fmt.Fprintf(os.Stderr, "unhealthy: %s: %v\n", *target, lastErr)
	os.Exit(1)
}
