package lexrank

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/poiesic/lexrank/core"
	"github.com/poiesic/lexrank/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRecords(t *testing.T) []*core.Record {
	t.Helper()
	records, err := seed.Records()
	require.NoError(t, err)
	return records
}

func TestNew(t *testing.T) {
	t.Run("seed catalog", func(t *testing.T) {
		catalog, err := New(seedRecords(t))
		require.NoError(t, err)
		assert.Equal(t, 20, catalog.Len())
	})

	t.Run("empty seed", func(t *testing.T) {
		catalog, err := New(nil)
		require.NoError(t, err)
		assert.Zero(t, catalog.Len())
	})

	t.Run("ids follow insertion order", func(t *testing.T) {
		catalog, err := New([]*core.Record{
			{Id: 99, Label: "A", KeywordText: "fever", Note: "n"},
			{Id: -7, Label: "B", KeywordText: "cough", Note: "n"},
		})
		require.NoError(t, err)
		records := catalog.Records()
		assert.Equal(t, 0, records[0].Id)
		assert.Equal(t, 1, records[1].Id)
	})

	t.Run("invalid seed record is a construction error", func(t *testing.T) {
		_, err := New([]*core.Record{
			{Label: "A", KeywordText: "fever", Note: "n"},
			{Label: "B", KeywordText: "   ", Note: "n"},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrInvalidRecord)

		var verr *core.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, core.FieldKeywordText, verr.Field)
	})
}

func TestCatalog_AddRecord(t *testing.T) {
	t.Run("appends and rebuilds", func(t *testing.T) {
		catalog, err := New(seedRecords(t))
		require.NoError(t, err)

		_, modelBefore := catalog.Snapshot()

		record, err := catalog.AddRecord("Tension Headache", "headache neck stiffness stress", "Rest, hydration (educational)")
		require.NoError(t, err)
		assert.Equal(t, 20, record.Id)
		assert.Equal(t, 21, catalog.Len())

		records, model := catalog.Snapshot()
		assert.Len(t, records, model.Rows(), "catalog and model must agree on row count")
		assert.NotEqual(t, modelBefore.Revision(), model.Revision())
	})

	t.Run("trims fields", func(t *testing.T) {
		catalog, err := New(nil)
		require.NoError(t, err)

		record, err := catalog.AddRecord("  Laryngitis ", " hoarse voice throat ", " Voice rest ")
		require.NoError(t, err)
		assert.Equal(t, "Laryngitis", record.Label)
		assert.Equal(t, "hoarse voice throat", record.KeywordText)
		assert.Equal(t, "Voice rest", record.Note)
	})

	t.Run("blank field is rejected without mutation", func(t *testing.T) {
		catalog, err := New(seedRecords(t))
		require.NoError(t, err)
		_, modelBefore := catalog.Snapshot()

		for _, tc := range []struct {
			name    string
			label   string
			keyword string
			note    string
			field   string
		}{
			{"blank label", "", "fever", "note", core.FieldLabel},
			{"blank keywords", "Label", "  ", "note", core.FieldKeywordText},
			{"blank note", "Label", "fever", "\t", core.FieldNote},
		} {
			t.Run(tc.name, func(t *testing.T) {
				_, err := catalog.AddRecord(tc.label, tc.keyword, tc.note)
				require.Error(t, err)

				var verr *core.ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, tc.field, verr.Field)
			})
		}

		assert.Equal(t, 20, catalog.Len())
		_, modelAfter := catalog.Snapshot()
		assert.Equal(t, modelBefore.Revision(), modelAfter.Revision(), "failed add must not rebuild the model")
	})

	t.Run("new record is rankable by its unique terms", func(t *testing.T) {
		catalog, err := New(seedRecords(t))
		require.NoError(t, err)

		_, err = catalog.AddRecord("Altitude Sickness", "dizziness breathlessness altitude insomnia", "Descend, rest (educational)")
		require.NoError(t, err)

		ranker, err := catalog.NewRanker()
		require.NoError(t, err)
		defer ranker.Release()

		results, err := ranker.Rank(context.Background(), "altitude dizziness insomnia", 5)
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, "Altitude Sickness", results[0].Record.Label)
		assert.Greater(t, results[0].Similarity, results[1].Similarity)
	})
}

func TestCatalog_Records_ReturnsCopy(t *testing.T) {
	catalog, err := New(seedRecords(t))
	require.NoError(t, err)

	records := catalog.Records()
	records[0] = &core.Record{Label: "clobbered"}

	assert.Equal(t, "Common Cold", catalog.Records()[0].Label)
}

func TestCatalog_SeedScenario(t *testing.T) {
	catalog, err := New(seedRecords(t))
	require.NoError(t, err)

	ranker, err := catalog.NewRanker()
	require.NoError(t, err)
	defer ranker.Release()

	results, err := ranker.Rank(context.Background(), "fever cough fatigue", 5)
	require.NoError(t, err)
	require.Len(t, results, 5)

	labels := make([]string, len(results))
	for i, r := range results {
		labels[i] = r.Record.Label
	}
	assert.Contains(t, labels, "Common Cold")

	for _, r := range results {
		if r.Record.Label != "Common Cold" {
			continue
		}
		assert.ElementsMatch(t,
			[]string{"fever", "cough", "fatigue"},
			strings.Split(r.Evidence, ", "))
		assert.NotEmpty(t, r.Record.Note)
	}
}

func TestCatalog_SnapshotConsistencyUnderMutation(t *testing.T) {
	catalog, err := New(seedRecords(t))
	require.NoError(t, err)

	ranker, err := catalog.NewRanker()
	require.NoError(t, err)
	defer ranker.Release()

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 25; i++ {
			_, err := catalog.AddRecord("Synthetic", "synthetic keyword set", "note")
			assert.NoError(t, err)
		}
		close(stop)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			records, model := catalog.Snapshot()
			assert.Equal(t, len(records), model.Rows(),
				"snapshot must never pair N records with an M-row model")

			results, err := ranker.Rank(context.Background(), "fever cough fatigue", 5)
			assert.NoError(t, err)
			assert.Len(t, results, 5)

			select {
			case <-stop:
				return
			default:
			}
		}
	}()

	wg.Wait()
	assert.Equal(t, 45, catalog.Len())
}
