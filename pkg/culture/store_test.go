package culture_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plblum/jTAC-sub002/pkg/culture"
	"github.com/plblum/jTAC-sub002/pkg/logger"
)

func TestStoreCulture(t *testing.T) {
	t.Parallel()

	store := culture.NewStore()

	t.Run("exact name", func(t *testing.T) {
		t.Parallel()
		info, err := store.Culture("fr-FR")
		require.NoError(t, err)
		assert.Equal(t, ",", info.Number.DecimalSep)
		assert.Equal(t, "€", info.Currency.Symbol)
	})

	t.Run("name is case insensitive", func(t *testing.T) {
		t.Parallel()
		info, err := store.Culture("EN_gb")
		require.NoError(t, err)
		assert.Equal(t, "en-GB", info.Name)
	})

	t.Run("empty name selects default", func(t *testing.T) {
		t.Parallel()
		info, err := store.Culture("")
		require.NoError(t, err)
		assert.Equal(t, "en-US", info.Name)
		assert.Equal(t, "en-US", store.DefaultName())
	})

	t.Run("falls back to the same language", func(t *testing.T) {
		t.Parallel()
		info, err := store.Culture("de-AT")
		require.NoError(t, err)
		assert.Equal(t, "de-DE", info.Name)
	})

	t.Run("invariant", func(t *testing.T) {
		t.Parallel()
		info, err := store.Culture(culture.Invariant)
		require.NoError(t, err)
		assert.Equal(t, ".", info.Number.DecimalSep)
		assert.Equal(t, "MM/dd/yyyy", info.DateTime.ShortDatePattern)
	})

	t.Run("unknown culture", func(t *testing.T) {
		t.Parallel()
		_, err := store.Culture("not a culture!")
		require.Error(t, err)
		assert.ErrorIs(t, err, culture.ErrCultureNotFound)
	})

	t.Run("hindi uses two digit secondary groups", func(t *testing.T) {
		t.Parallel()
		info, err := store.Culture("hi-IN")
		require.NoError(t, err)
		assert.Equal(t, []int{3, 2}, info.Number.GroupSizes)
	})
}

func TestStoreDefaultCulture(t *testing.T) {
	t.Parallel()

	store := culture.NewStore(culture.WithDefaultCulture("sv-SE"))
	info, err := store.Culture("")
	require.NoError(t, err)
	assert.Equal(t, "sv-SE", info.Name)

	unknown := culture.NewStore(culture.WithDefaultCulture("xx-XX"))
	assert.Equal(t, culture.Invariant, unknown.DefaultName())
}

func TestInvariantProvider(t *testing.T) {
	t.Parallel()

	p := culture.InvariantProvider()
	info, err := p.Culture("")
	require.NoError(t, err)
	assert.Equal(t, culture.Invariant, info.Name)
	assert.Same(t, p, culture.InvariantProvider())
}

func TestStoreAdd(t *testing.T) {
	t.Parallel()

	store := culture.NewStore()
	base, err := store.Culture("en-US")
	require.NoError(t, err)

	custom := base.Clone()
	custom.Name = "en-ZA"
	custom.Number.GroupSep = " "
	require.NoError(t, store.Add(custom))

	// The store keeps its own copy.
	custom.Number.GroupSep = "?"
	info, err := store.Culture("en-ZA")
	require.NoError(t, err)
	assert.Equal(t, " ", info.Number.GroupSep)
	assert.Contains(t, store.Names(), "en-ZA")

	// Original built-in is untouched by the clone.
	assert.Equal(t, ",", base.Number.GroupSep)

	broken := base.Clone()
	broken.Name = "en-XX"
	broken.DateTime.Months = broken.DateTime.Months[:3]
	err = store.Add(broken)
	require.Error(t, err)
	assert.ErrorIs(t, err, culture.ErrInvalidCulture)
}

func TestStoreLoad(t *testing.T) {
	t.Parallel()

	t.Run("directory overlays base records", func(t *testing.T) {
		t.Parallel()
		store := culture.NewStore()
		require.NoError(t, store.Load(context.Background(), culture.NewDirectoryAdapter(culture.NewYAMLParser(), "testdata/cultures")))

		info, err := store.Culture("fr-CA")
		require.NoError(t, err)
		assert.Equal(t, "fr-CA", info.Name)
		assert.Equal(t, "$", info.Currency.Symbol)
		assert.Equal(t, "(n $)", info.Currency.NegPattern)
		assert.Equal(t, 2, info.Currency.Decimals)
		assert.Equal(t, "yyyy-MM-dd", info.DateTime.ShortDatePattern)
		// Inherited from fr-FR.
		assert.Equal(t, ",", info.Number.DecimalSep)
		assert.Equal(t, "janvier", info.DateTime.Months[0])

		// The base record is not modified by the overlay.
		fr, err := store.Culture("fr-FR")
		require.NoError(t, err)
		assert.Equal(t, "€", fr.Currency.Symbol)
		assert.Equal(t, "dd/MM/yyyy", fr.DateTime.ShortDatePattern)
	})

	t.Run("json file", func(t *testing.T) {
		t.Parallel()
		store := culture.NewStore()
		require.NoError(t, store.Load(context.Background(), culture.NewFileAdapter(culture.NewJSONParser(), "testdata/cultures/es-MX.json")))

		info, err := store.Culture("es-MX")
		require.NoError(t, err)
		assert.Equal(t, "enero", info.DateTime.Months[0])
		assert.Equal(t, "Sunday", info.DateTime.Days[0])
	})

	t.Run("records based on records of the same load", func(t *testing.T) {
		t.Parallel()
		store := culture.NewStore()
		adapter := &culture.MapAdapter{Data: map[string]map[string]any{
			"en-IE": {"base": "en-GB", "currency": map[string]any{"symbol": "€"}},
			"ga-IE": {"base": "en-IE"},
		}}
		require.NoError(t, store.Load(context.Background(), adapter))

		info, err := store.Culture("ga-IE")
		require.NoError(t, err)
		assert.Equal(t, "€", info.Currency.Symbol)
		assert.Equal(t, "dd/MM/yyyy", info.DateTime.ShortDatePattern)
	})

	t.Run("currency decimals follow the region currency", func(t *testing.T) {
		t.Parallel()
		store := culture.NewStore()
		adapter := &culture.MapAdapter{Data: map[string]map[string]any{
			"en-JP": {"base": "en-US", "currency": map[string]any{"symbol": "¥"}},
		}}
		require.NoError(t, store.Load(context.Background(), adapter))

		info, err := store.Culture("en-JP")
		require.NoError(t, err)
		assert.Equal(t, 0, info.Currency.Decimals)
	})

	t.Run("unknown base", func(t *testing.T) {
		t.Parallel()
		store := culture.NewStore()
		adapter := &culture.MapAdapter{Data: map[string]map[string]any{
			"en-IE": {"base": "en-QQ"},
		}}
		err := store.Load(context.Background(), adapter)
		require.Error(t, err)
		assert.ErrorIs(t, err, culture.ErrUnknownBase)
	})

	t.Run("invalid record is rejected", func(t *testing.T) {
		t.Parallel()
		store := culture.NewStore()
		err := store.Load(context.Background(), culture.NewFileAdapter(culture.NewYAMLParser(), "testdata/invalid.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, culture.ErrInvalidCulture)
		assert.NotContains(t, store.Names(), "xx-YY")
	})

	t.Run("nil adapter", func(t *testing.T) {
		t.Parallel()
		require.Error(t, culture.NewStore().Load(context.Background(), nil))
	})
}

func TestStoreConcurrentAccess(t *testing.T) {
	t.Parallel()

	store := culture.NewStore()
	base, err := store.Culture("en-US")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = store.Culture("fr-BE")
		}()
		go func() {
			defer wg.Done()
			c := base.Clone()
			c.Name = "en-NZ"
			_ = store.Add(c)
		}()
	}
	wg.Wait()

	info, err := store.Culture("en-NZ")
	require.NoError(t, err)
	assert.Equal(t, "en-NZ", info.Name)
}

func TestCurrencyDecimals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		decimals int
		ok       bool
	}{
		{"en-US", 2, true},
		{"ja-JP", 0, true},
		{"fr", 2, true},
		{culture.Invariant, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d, ok := culture.CurrencyDecimals(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.decimals, d)
		})
	}
}

func TestRegionOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "US", culture.RegionOf("en-US"))
	assert.Equal(t, "FR", culture.RegionOf("fr"))
	assert.Equal(t, "CA", culture.RegionOf("fr_CA"))
	assert.Equal(t, "", culture.RegionOf(culture.Invariant))
	assert.Equal(t, "", culture.RegionOf(""))
}

func TestContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, "", culture.FromContext(ctx))
	ctx = culture.WithCulture(ctx, "de-DE")
	assert.Equal(t, "de-DE", culture.FromContext(ctx))
}

func TestContextAttr(t *testing.T) {
	t.Parallel()

	_, ok := culture.ContextAttr(context.Background())
	assert.False(t, ok)

	attr, ok := culture.ContextAttr(culture.WithCulture(context.Background(), "sv-SE"))
	require.True(t, ok)
	assert.Equal(t, "culture", attr.Key)
	assert.Equal(t, "sv-SE", attr.Value.String())

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(culture.ContextAttr))
	log.InfoContext(culture.WithCulture(context.Background(), ""), "formatted")
	assert.Contains(t, buf.String(), "culture=invariant")
}

func TestStoreLogging(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))
	store := culture.NewStore(culture.WithLogger(log))

	adapter := &culture.MapAdapter{Data: map[string]map[string]any{
		"en-IE": {"base": "en-GB"},
		"xx-QQ": {"base": "en-QQ"},
	}}
	require.Error(t, store.Load(context.Background(), adapter))

	out := buf.String()
	assert.Contains(t, out, `msg="culture registered" culture=en-IE`)
	assert.Contains(t, out, `msg="culture rejected" culture=xx-QQ`)
	assert.Contains(t, out, `msg="cultures loaded"`)
}
