package analytics

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"launchboard/internal/dataset"
)

func TestFilterPayload_FullBounds(t *testing.T) {
	t.Parallel()

	ds := testDataset()

	// 全量边界 + ALL：原样返回所有记录
	got := FilterPayload(ds, dataset.SiteAll, ds.PayloadMin, ds.PayloadMax)
	if diff := cmp.Diff(ds.Records, got); diff != "" {
		t.Fatalf("full-bounds filter should return every row (-want +got):\n%s", diff)
	}
}

func TestFilterPayload_Range(t *testing.T) {
	t.Parallel()

	got := FilterPayload(testDataset(), dataset.SiteAll, 2000, 6000)

	want := []dataset.Record{
		{Site: "CCAFS LC-40", PayloadMass: 2395, Outcome: 1, Booster: "v1.1"},
		{Site: "CCAFS LC-40", PayloadMass: 3170, Outcome: 0, Booster: "v1.1"},
		{Site: "KSC LC-39A", PayloadMass: 5300, Outcome: 1, Booster: "FT"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("filter mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterPayload_InclusiveBounds(t *testing.T) {
	t.Parallel()

	// 区间端点为闭区间
	got := FilterPayload(testDataset(), dataset.SiteAll, 500, 500)
	if len(got) != 1 || got[0].PayloadMass != 500 {
		t.Fatalf("inclusive bounds should match exact value, got %+v", got)
	}
}

func TestFilterPayload_EmptyResult(t *testing.T) {
	t.Parallel()

	// 不覆盖任何载荷值的区间得到空集合而非错误
	got := FilterPayload(testDataset(), dataset.SiteAll, 100000, 200000)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestFilterPayload_SiteAndRange(t *testing.T) {
	t.Parallel()

	// 发射场过滤与载荷区间取交集
	got := FilterPayload(testDataset(), "CCAFS LC-40", 2000, 6000)

	want := []dataset.Record{
		{Site: "CCAFS LC-40", PayloadMass: 2395, Outcome: 1, Booster: "v1.1"},
		{Site: "CCAFS LC-40", PayloadMass: 3170, Outcome: 0, Booster: "v1.1"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("filter mismatch (-want +got):\n%s", diff)
	}

	for _, r := range got {
		if r.Site != "CCAFS LC-40" {
			t.Fatalf("row from wrong site: %+v", r)
		}
	}
}

func TestFilterPayload_UnknownSite(t *testing.T) {
	t.Parallel()

	got := FilterPayload(testDataset(), "Boca Chica", 0, 100000)
	if len(got) != 0 {
		t.Fatalf("unknown site should yield empty result, got %+v", got)
	}
}
