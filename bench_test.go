package canonjson_test

import (
	"encoding/json"
	"testing"

	"canonjson"

	"github.com/bytedance/sonic"
	goccy "github.com/goccy/go-json"
	jsoniter "github.com/json-iterator/go"
	segmentio "github.com/segmentio/encoding/json"
	"github.com/tidwall/gjson"
)

// manifestText is a representative segment manifest in canonical form.
var manifestText = []byte(`{
  "fields": {
    "body": {
      "analyzer": "standard",
      "indexed": true,
      "stored": false
    },
    "title": {
      "analyzer": "standard",
      "boost": 2.5,
      "indexed": true,
      "stored": true
    }
  },
  "format": 3,
  "segments": [
    {
      "del_count": 0,
      "doc_count": 1024,
      "name": "seg_1"
    },
    {
      "del_count": 12,
      "doc_count": 512,
      "name": "seg_2"
    }
  ]
}
`)

var manifestTree = func() canonjson.Value {
	v, err := canonjson.Parse(manifestText)
	if err != nil {
		panic(err)
	}
	return v
}()

// TestCanonicalAgreesWithStdlib cross-checks our parse of the manifest
// against two independent decoders.
func TestCanonicalAgreesWithStdlib(t *testing.T) {
	var std map[string]interface{}
	if err := json.Unmarshal(manifestText, &std); err != nil {
		t.Fatalf("stdlib rejected canonical output: %v", err)
	}
	var gc map[string]interface{}
	if err := goccy.Unmarshal(manifestText, &gc); err != nil {
		t.Fatalf("goccy rejected canonical output: %v", err)
	}

	obj := manifestTree.(canonjson.Object)
	if got, want := len(obj), len(std); got != want {
		t.Fatalf("top-level key count %d, want %d", got, want)
	}
	format, err := canonjson.AsInt64(obj["format"])
	if err != nil || format != 3 {
		t.Errorf("format = %d, %v", format, err)
	}
	segs := obj["segments"].(canonjson.Array)
	if len(segs) != len(std["segments"].([]interface{})) {
		t.Errorf("segment count disagrees with stdlib")
	}
}

func BenchmarkParseManifest(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = canonjson.Parse(manifestText)
	}
}

func BenchmarkStdUnmarshalManifest(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var m map[string]interface{}
		_ = json.Unmarshal(manifestText, &m)
	}
}

func BenchmarkSonicUnmarshalManifest(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var m map[string]interface{}
		_ = sonic.Unmarshal(manifestText, &m)
	}
}

func BenchmarkGoccyUnmarshalManifest(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var m map[string]interface{}
		_ = goccy.Unmarshal(manifestText, &m)
	}
}

func BenchmarkJsoniterUnmarshalManifest(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var m map[string]interface{}
		_ = jsoniter.Unmarshal(manifestText, &m)
	}
}

func BenchmarkSegmentioUnmarshalManifest(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var m map[string]interface{}
		_ = segmentio.Unmarshal(manifestText, &m)
	}
}

func BenchmarkSerializeManifest(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = canonjson.Serialize(manifestTree)
	}
}

func BenchmarkStdMarshalIndentManifest(b *testing.B) {
	var m map[string]interface{}
	if err := json.Unmarshal(manifestText, &m); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = json.MarshalIndent(m, "", "  ")
	}
}

// Extraction comparison: walking our tree versus gjson's path lookup.
func BenchmarkTreeExtractSegmentName(b *testing.B) {
	for i := 0; i < b.N; i++ {
		obj := manifestTree.(canonjson.Object)
		segs := obj["segments"].(canonjson.Array)
		_ = string(segs[0].(canonjson.Object)["name"].(canonjson.String))
	}
}

func BenchmarkGjsonExtractSegmentName(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = gjson.GetBytes(manifestText, "segments.0.name").String()
	}
}
