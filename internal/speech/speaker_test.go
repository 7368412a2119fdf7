package speech

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/lepinkainen/moviequiz/internal/config"
	"github.com/lepinkainen/moviequiz/internal/fileutil"
	"github.com/lepinkainen/moviequiz/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []string
}

type fakeTranslator struct {
	rec *recorder
}

func (f fakeTranslator) To(_ context.Context, text, target string) (string, error) {
	f.rec.events = append(f.rec.events, "translate:"+target+":"+text)
	return target + "(" + text + ")", nil
}

type fakeSynthesizer struct {
	rec        *recorder
	skipCreate bool
	err        error
}

func (f fakeSynthesizer) Synthesize(_ context.Context, text, lang, path string) error {
	f.rec.events = append(f.rec.events, "synthesize:"+lang+":"+text)
	if f.err != nil {
		return f.err
	}
	if f.skipCreate {
		return nil
	}
	return os.WriteFile(path, []byte("ID3"), 0o644)
}

type fakePlayer struct {
	rec    *recorder
	remove bool
}

func (f fakePlayer) Play(_ context.Context, path string) error {
	f.rec.events = append(f.rec.events, "play")
	if f.remove {
		return os.Remove(path)
	}
	return nil
}

func speechConfig(env *testutil.TestEnv, lang string) config.Speech {
	return config.Speech{
		Enabled:       true,
		Language:      lang,
		Pronunciation: lang,
		File:          env.Path("tts.mp3"),
	}
}

func TestSpeak_DisabledIsStrictNoop(t *testing.T) {
	env := testutil.NewTestEnv(t)
	rec := &recorder{}
	var out bytes.Buffer

	cfg := speechConfig(env, "en")
	cfg.Enabled = false
	speaker := NewSpeaker(cfg, "de", fakeTranslator{rec}, fakeSynthesizer{rec: rec, skipCreate: true}, fakePlayer{rec: rec}, &out)

	require.NoError(t, speaker.Speak(context.Background(), "ship", "Schiff"))
	assert.Empty(t, rec.events)
	assert.Empty(t, out.String())
	assert.False(t, speaker.Enabled())
}

func TestSpeak_NilSpeakerIsSilent(t *testing.T) {
	var speaker *Speaker
	assert.NoError(t, speaker.Speak(context.Background(), "ship", "ship"))
	assert.False(t, speaker.Enabled())
}

func TestSpeak_SameLanguageUsesTranslatedText(t *testing.T) {
	env := testutil.NewTestEnv(t)
	rec := &recorder{}
	var out bytes.Buffer

	speaker := NewSpeaker(speechConfig(env, "de"), "de", fakeTranslator{rec}, fakeSynthesizer{rec: rec}, fakePlayer{rec: rec}, &out)

	require.NoError(t, speaker.Speak(context.Background(), "ship", "Schiff"))
	assert.Equal(t, []string{"synthesize:de:Schiff", "play"}, rec.events)
	assert.False(t, fileutil.FileExists(env.Path("tts.mp3")), "artifact must be deleted after playback")
	assert.Empty(t, out.String())
}

func TestSpeak_DifferentLanguageTranslatesOriginal(t *testing.T) {
	env := testutil.NewTestEnv(t)
	rec := &recorder{}
	var out bytes.Buffer

	speaker := NewSpeaker(speechConfig(env, "fr"), "de", fakeTranslator{rec}, fakeSynthesizer{rec: rec}, fakePlayer{rec: rec}, &out)

	require.NoError(t, speaker.Speak(context.Background(), "ship", "Schiff"))
	assert.Equal(t, []string{"translate:fr:ship", "synthesize:fr:fr(ship)", "play"}, rec.events)
}

func TestSpeak_MissingArtifactPrintsNotice(t *testing.T) {
	env := testutil.NewTestEnv(t)
	rec := &recorder{}
	var out bytes.Buffer

	speaker := NewSpeaker(speechConfig(env, "en"), "en", fakeTranslator{rec}, fakeSynthesizer{rec: rec}, fakePlayer{rec: rec, remove: true}, &out)

	require.NoError(t, speaker.Speak(context.Background(), "ship", "ship"))
	assert.Equal(t, MissingArtifactNotice+"\n", out.String())
}

func TestSpeak_SynthesisErrorPropagates(t *testing.T) {
	env := testutil.NewTestEnv(t)
	rec := &recorder{}
	boom := errors.New("endpoint refused")

	speaker := NewSpeaker(speechConfig(env, "en"), "en", fakeTranslator{rec}, fakeSynthesizer{rec: rec, err: boom}, fakePlayer{rec: rec}, &bytes.Buffer{})

	err := speaker.Speak(context.Background(), "ship", "ship")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotContains(t, rec.events, "play")
}
