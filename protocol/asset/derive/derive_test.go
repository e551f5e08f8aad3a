package derive

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"chain-shielded/log"
	"chain-shielded/metrics"
	"chain-shielded/protocol/asset"
	"chain-shielded/testutil"
)

func TestDeriveMatchesNew(t *testing.T) {
	var reqs []Request
	for i := 0; i < 20; i++ {
		reqs = append(reqs, Request{
			Owner:    testutil.TestAddress(i % 3),
			Name:     fmt.Sprintf("coin %d", i),
			Metadata: fmt.Sprintf("metadata %d", i),
		})
	}

	r := metrics.NewRegistry()
	d := &Deriver{Workers: 4, Registry: r}
	results := d.Derive(context.Background(), reqs)
	testutil.ExpectEqual(t, len(results), len(reqs), "result count")

	for i, res := range results {
		if res.Err != nil {
			testutil.FatalErr(t, res.Err)
		}
		want, err := asset.New(reqs[i].Owner, reqs[i].Name, reqs[i].Metadata)
		if err != nil {
			testutil.FatalErr(t, err)
		}
		if !res.Asset.ID().Equal(want.ID()) {
			t.Errorf("result %d: id %s want %s", i, res.Asset.ID().String(), want.ID().String())
		}
	}

	testutil.ExpectEqual(t, metrics.Counter(r, "asset.derive.ok").Count(), int64(len(reqs)), "ok count")
	testutil.ExpectEqual(t, metrics.Counter(r, "asset.derive.failed").Count(), int64(0), "failed count")
	testutil.ExpectEqual(t, metrics.Timer(r, "asset.derive.elapsed").Count(), int64(len(reqs)), "timer count")
}

func TestDeriveDuplicates(t *testing.T) {
	owner := testutil.TestPublicAddress
	reqs := []Request{
		{Owner: owner, Name: "foo"},
		{Owner: owner, Name: "  foo "},
		{Owner: owner, Name: "foo", Metadata: "other"},
		{Owner: owner, Name: "foo"},
	}
	results := (&Deriver{Workers: 2, Registry: metrics.NewRegistry()}).Derive(context.Background(), reqs)
	for _, res := range results {
		if res.Err != nil {
			testutil.FatalErr(t, res.Err)
		}
	}
	if !results[0].Asset.ID().Equal(results[1].Asset.ID()) || !results[0].Asset.ID().Equal(results[3].Asset.ID()) {
		t.Error("identical requests derived different ids")
	}
	if results[0].Asset.ID().Equal(results[2].Asset.ID()) {
		t.Error("metadata did not change the id")
	}
}

func TestDeriveFailure(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stdout)

	r := metrics.NewRegistry()
	reqs := []Request{
		{Owner: testutil.TestPublicAddress, Name: "good"},
		{Owner: testutil.TestPublicAddress, Name: "   "},
	}
	results := (&Deriver{Registry: r}).Derive(context.Background(), reqs)

	if results[0].Err != nil {
		testutil.FatalErr(t, results[0].Err)
	}
	testutil.ExpectError(t, asset.ErrInvalidData, "blank name", func() error { return results[1].Err })
	if results[1].Asset != nil {
		t.Error("failed request returned an asset")
	}

	testutil.ExpectEqual(t, metrics.Counter(r, "asset.derive.ok").Count(), int64(1), "ok count")
	testutil.ExpectEqual(t, metrics.Counter(r, "asset.derive.failed").Count(), int64(1), "failed count")

	out := buf.String()
	if !strings.Contains(out, "request=1") || !strings.Contains(out, asset.ErrInvalidData.Error()) {
		t.Errorf("log output %q lacks the failed request", out)
	}
	if !strings.HasPrefix(out, "at=derive.go:") {
		t.Errorf("log output %q does not report Derive as the caller", out)
	}
}

func TestDeriveRecordsElapsed(t *testing.T) {
	reqs := []Request{{Owner: testutil.TestPublicAddress, Name: "timed"}}
	new(Deriver).Derive(context.Background(), reqs)

	var buf bytes.Buffer
	err := metrics.Dump(&buf, nil)
	if err != nil {
		testutil.FatalErr(t, err)
	}
	if !strings.Contains(buf.String(), "metric=derive.(*Deriver).Derive.elapsed") {
		t.Errorf("default registry lacks the Derive timer:\n%s", buf.String())
	}
}

func TestDeriveCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := metrics.NewRegistry()
	reqs := make([]Request, 5)
	for i := range reqs {
		reqs[i] = Request{Owner: testutil.TestPublicAddress, Name: fmt.Sprint("coin ", i)}
	}
	results := (&Deriver{Workers: 2, Registry: r}).Derive(ctx, reqs)
	for i, res := range results {
		if res.Err != context.Canceled {
			t.Errorf("result %d: err = %v want %v", i, res.Err, context.Canceled)
		}
		if res.Asset != nil {
			t.Errorf("result %d: derived after cancellation", i)
		}
	}
	testutil.ExpectEqual(t, metrics.Counter(r, "asset.derive.failed").Count(), int64(len(reqs)), "failed count")
}

func TestDeriveEmpty(t *testing.T) {
	results := new(Deriver).Derive(context.Background(), nil)
	testutil.ExpectEqual(t, len(results), 0, "result count")
}
