package locales

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"sheetloc/internal/domain"
	"sheetloc/internal/domain/entities"
)

func sampleDocument() *entities.Document {
	doc := entities.NewDocument()
	doc.Set([]string{"greeting"}, "Hello")
	doc.Set([]string{"farewell", "short"}, "Bye")
	return doc
}

func TestJSONEncoder(t *testing.T) {
	data, err := JSONEncoder{}.Encode(sampleDocument())
	require.NoError(t, err)

	want := "{\n" +
		"  \"greeting\": \"Hello\",\n" +
		"  \"farewell\": {\n" +
		"    \"short\": \"Bye\"\n" +
		"  }\n" +
		"}\n"
	assert.Equal(t, want, string(data))
}

func TestJSONEncoder_Escaping(t *testing.T) {
	doc := entities.NewDocument()
	doc.Set([]string{"html"}, "<b>Tom & Jerry</b>")
	doc.Set([]string{"quote"}, `say "hi"`)
	doc.Set([]string{"ja"}, "こんにちは")

	data, err := JSONEncoder{}.Encode(doc)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"<b>Tom & Jerry</b>"`)
	assert.Contains(t, string(data), `"say \"hi\""`)
	assert.Contains(t, string(data), `"こんにちは"`)
	assert.JSONEq(t, `{"html":"<b>Tom & Jerry</b>","quote":"say \"hi\"","ja":"こんにちは"}`, string(data))
}

func TestJSONEncoder_Empty(t *testing.T) {
	data, err := JSONEncoder{}.Encode(entities.NewDocument())
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}

func TestTOMLEncoder(t *testing.T) {
	data, err := TOMLEncoder{}.Encode(sampleDocument())
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, toml.Unmarshal(data, &got))
	assert.Equal(t, map[string]any{
		"greeting": "Hello",
		"farewell": map[string]any{"short": "Bye"},
	}, got)
}

func TestYAMLEncoder(t *testing.T) {
	data, err := YAMLEncoder{}.Encode(sampleDocument())
	require.NoError(t, err)

	want := "greeting: Hello\n" +
		"farewell:\n" +
		"  short: Bye\n"
	assert.Equal(t, want, string(data))
}

func TestYAMLEncoder_KeepsStrings(t *testing.T) {
	doc := entities.NewDocument()
	doc.Set([]string{"answer"}, "yes")
	doc.Set([]string{"count"}, "42")

	data, err := YAMLEncoder{}.Encode(doc)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, map[string]any{"answer": "yes", "count": "42"}, got)
}

func TestEncoderFor(t *testing.T) {
	for _, f := range []string{"json", "toml", "yaml"} {
		enc, err := EncoderFor(f)
		require.NoError(t, err)
		assert.Equal(t, f, enc.Ext())
	}
	_, err := EncoderFor("xml")
	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}

func TestFileWriter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "locales")
	w, err := NewFileWriter(dir, []string{"json", "yaml"})
	require.NoError(t, err)

	require.NoError(t, w.Prepare())
	assert.DirExists(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.json"), []byte("stale"), 0o644))

	written, err := w.Write("en", sampleDocument())
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "en.json"), filepath.Join(dir, "en.yaml")}, written)

	data, err := os.ReadFile(filepath.Join(dir, "en.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"greeting":"Hello","farewell":{"short":"Bye"}}`, string(data))
}

func TestFileWriter_DefaultsToJSON(t *testing.T) {
	w, err := NewFileWriter(t.TempDir(), nil)
	require.NoError(t, err)
	require.Len(t, w.encoders, 1)
	assert.Equal(t, "json", w.encoders[0].Ext())
}

func TestFileWriter_UnknownFormat(t *testing.T) {
	_, err := NewFileWriter(t.TempDir(), []string{"json", "po"})
	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}

func TestFileWriter_PartialFailure(t *testing.T) {
	dir := t.TempDir()
	w, err := NewFileWriter(dir, []string{"json", "toml"})
	require.NoError(t, err)

	// A directory squatting on the JSON path makes that write fail.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "ja.json"), 0o755))

	written, err := w.Write("ja", sampleDocument())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ja.json")
	assert.Equal(t, []string{filepath.Join(dir, "ja.toml")}, written)
}

func TestFileWriter_RejectsPathLikeLanguage(t *testing.T) {
	w, err := NewFileWriter(t.TempDir(), []string{"json"})
	require.NoError(t, err)

	for _, lang := range []string{"../en", "a/b", `a\b`, "..", "."} {
		_, err := w.Write(lang, sampleDocument())
		assert.Error(t, err, lang)
	}
}
