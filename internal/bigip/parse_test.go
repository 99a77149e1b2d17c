package bigip

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseTopology(t *testing.T) {
	files := map[string]string{
		"bigip_gtm.conf": strings.Join([]string{
			"topology-longest-match yes",
			"gtm topology ldns: net1 server: net2 { }",
			"gtm topology ldns: net1 server: net2 { }",
		}, "\n"),
	}

	doc, warns, err := Parse(files)
	if err != nil {
		t.Fatal(err)
	}

	if len(warns) != 0 {
		t.Errorf("unexpected warnings %v", warns)
	}

	v, ok := doc.Get("gtm topology /Common/Shared/topology")
	if !ok {
		t.Fatal("synthesized topology object not found")
	}

	topo, ok := v.(*Object)
	if !ok {
		t.Fatalf("expected *Object, got %T", v)
	}

	rv, ok := topo.Get("records")
	if !ok {
		t.Fatal("records not found")
	}
	records := rv.(*Object)

	for _, name := range []string{"topology_0", "topology_1"} {
		rec, ok := records.Get(name)
		if !ok {
			t.Errorf("%v not found", name)
			continue
		}

		obj := rec.(*Object)
		if src, _ := obj.Get("source"); src != Scalar("net1") {
			t.Errorf("%v: wrong source %v", name, src)
		}
		if dst, _ := obj.Get("destination"); dst != Scalar("net2") {
			t.Errorf("%v: wrong destination %v", name, dst)
		}
	}

	if lm, _ := records.Get("longest-match-enabled"); lm != Scalar("true") {
		t.Errorf("wrong longest-match-enabled value %v", lm)
	}
}

func TestParseExcludedFiles(t *testing.T) {
	files := map[string]string{
		"bigip_script.conf": "broken {",
		"bigip.license":     "not even a config",
		"Common_d_wc_d.crt": "-----BEGIN CERTIFICATE-----",
		"bigip_base.conf":   "sys db failover { }",
	}

	doc, _, err := Parse(files)
	if err != nil {
		t.Fatal(err)
	}

	if doc.Len() != 1 {
		t.Fatalf("expected exactly one root object, got keys %q", doc.Keys())
	}

	if _, ok := doc.Get("sys db failover"); !ok {
		t.Error("object from the regular file is missing")
	}
}

func TestParseMergeOverwrites(t *testing.T) {
	files := map[string]string{
		"a.conf": "ltm pool /Common/p {\n    monitor http\n}\n",
		"b.conf": "ltm pool /Common/p {\n    monitor https\n}\n",
	}

	doc, _, err := Parse(files)
	if err != nil {
		t.Fatal(err)
	}

	v, ok := doc.Get("ltm pool /Common/p")
	if !ok {
		t.Fatal("pool not found")
	}

	monitor, _ := v.(*Object).Get("monitor")
	if monitor != Scalar("https") {
		t.Errorf("expected the later file to win, got monitor %v", monitor)
	}
}

func TestParseFatalError(t *testing.T) {
	files := map[string]string{
		"good.conf": "sys db x { }",
		"bad.conf":  "ltm pool /Common/broken {\n    monitor http\n",
	}

	doc, warns, err := Parse(files)
	if err == nil {
		t.Fatal("expected error for unbalanced input, got nil")
	}

	if doc != nil || warns != nil {
		t.Error("no partial document may be returned on fatal errors")
	}

	if !strings.Contains(err.Error(), "error parsing input file") {
		t.Errorf("error lacks the explanatory prefix: %v", err)
	}

	if !strings.Contains(err.Error(), "ltm pool /Common/broken") {
		t.Errorf("error does not name the offending header: %v", err)
	}
}

func TestParseDocumentJSON(t *testing.T) {
	files := map[string]string{
		"bigip.conf": strings.Join([]string{
			"# main configuration",
			"ltm virtual /Common/v {",
			"    destination /Common/10.0.0.1:443",
			"    vlans { ext }",
			"    persist { }",
			"}",
			"ltm rule /Common/r {",
			"when HTTP_REQUEST {",
			"}",
			"}",
		}, "\n"),
	}

	doc, _, err := Parse(files)
	if err != nil {
		t.Fatal(err)
	}

	buf, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}

	want := `{"ltm virtual /Common/v":{"destination":"/Common/10.0.0.1:443","vlans":["ext"],"persist":{}},` +
		`"ltm rule /Common/r":"when HTTP_REQUEST {\n}"}`
	if string(buf) != want {
		t.Errorf("wrong document:\n  want: %v\n  got:  %v", want, string(buf))
	}
}

func TestParseFileIndependence(t *testing.T) {
	// per-file state is local to the call, so the same text parses
	// identically no matter how often or in which order files are parsed
	text := "gtm topology ldns: a server: b { }\n"

	first, _, err := ParseFile(text)
	if err != nil {
		t.Fatal(err)
	}

	second, _, err := ParseFile(text)
	if err != nil {
		t.Fatal(err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Errorf("parsing the same file twice differs:\n  first:  %s\n  second: %s", a, b)
	}
}
