package tests

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/sum3/pkg/sum"
	"github.com/ib-77/sum3/pkg/sum/do"
	"github.com/ib-77/sum3/pkg/sum/fault"
	"github.com/ib-77/sum3/pkg/sum/future"
	"github.com/ib-77/sum3/pkg/sum/pipe"
	"github.com/ib-77/sum3/pkg/sum/try"
)

func parseURL(raw string) sum.Outcome[*url.URL] {
	return try.Trying(func() (*url.URL, error) {
		return url.Parse(raw)
	})
}

func requireHTTPS(u *url.URL) sum.Outcome[*url.URL] {
	if u.Scheme != "https" {
		return sum.Fail[*url.URL](fault.Newf("bad_scheme", "unsupported scheme %q", u.Scheme))
	}
	return sum.Success(u)
}

func hostOption(host string) sum.Option[string] {
	if host == "" {
		return sum.None[string]()
	}
	return sum.Some(host)
}

func hostOf(raw string) sum.Outcome[string] {
	return do.Do(func(b do.B) string {
		u := do.Bind(b, parseURL(raw))
		u = do.Bind(b, requireHTTPS(u))
		host := do.Bind(b, hostOption(u.Hostname()).OkOrError("empty host"))
		return strings.ToLower(host)
	})
}

// TestURLPipeline runs the whole stack end to end: guarded parsing, a
// sequencing block and a point-free collapse, no manual branching.
func TestURLPipeline(t *testing.T) {
	urls := []string{
		"https://www.Example.com/a",
		"https://www.test.org",
		"http://insecure.org",
		"://not-a-url",
		"https://",
	}

	show := pipe.Match(
		func(host string) string { return host },
		func(err error) string { return "invalid" })

	var got []string
	for _, raw := range urls {
		got = append(got, show(hostOf(raw)))
	}

	fmt.Println("Pipeline results:")
	for i, res := range got {
		fmt.Printf("%d. %s - %s\n", i+1, urls[i], res)
	}

	assert.Equal(t, []string{"www.example.com", "www.test.org", "invalid", "invalid", "invalid"}, got)
}

// TestAsyncPipeline binds pending values inside one async block.
func TestAsyncPipeline(t *testing.T) {
	ctx := context.Background()

	fetchSize := func(host string) *future.Future[int] {
		return future.FromFunc(func() (int, error) {
			return len(host), nil
		})
	}

	f := do.DoAsync(ctx, func(b do.B) string {
		host := do.Bind(b, hostOf("https://www.example.com"))
		size := do.BindFuture(b, fetchSize(host))
		return fmt.Sprintf("%s:%d", host, size)
	})

	out, err := f.Get(ctx)
	assert.NoError(t, err)
	assert.True(t, out.IsOk())
	assert.Equal(t, "www.example.com:15", out.Value())
}

// TestFaultClassificationSurvivesPipeline checks that a typed fault keeps
// its classification through the whole chain.
func TestFaultClassificationSurvivesPipeline(t *testing.T) {
	out := hostOf("http://insecure.org")
	assert.True(t, out.IsErr())

	var f *fault.Fault
	assert.ErrorAs(t, out.Err(), &f)
	assert.Equal(t, "bad_scheme", f.Name())

	opt := out.SomeOrNone()
	assert.True(t, opt.IsNone())

	kept := sum.AsNullable(out)
	assert.True(t, kept.IsErr(), "AsNullable must keep the failure")
}
