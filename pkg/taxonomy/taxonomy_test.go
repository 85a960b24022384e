package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore() *Store {
	topics := []Topic{
		{Name: "Salud", Keywords: []string{"salud", "hospital"}},
		{Name: "Energía", Keywords: []string{"energía", "tarifa"}},
		{Name: "Vacío", Keywords: nil},
	}
	accounts := []Account{
		{Name: "Farma SA", Topics: []string{"Salud"}},
		{Name: "Petro SA", Topics: []string{"Energía"}},
		{Name: "Holding SA", Topics: []string{"Salud", "Energía"}},
	}
	return NewStore(topics, accounts)
}

func TestClassifyCaseInsensitiveSubstring(t *testing.T) {
	store := testStore()

	matches := store.Classify("Nueva política de Salud Pública anunciada")
	require.Len(t, matches, 1)
	assert.Equal(t, "Salud", matches[0].Topic)
	assert.Equal(t, "salud", matches[0].MatchedKeyword)
}

func TestClassifyFirstKeywordWins(t *testing.T) {
	store := testStore()

	matches := store.Classify("el hospital recibe fondos de salud")
	require.Len(t, matches, 1)
	// Keyword order within the topic decides which one reports.
	assert.Equal(t, "salud", matches[0].MatchedKeyword)
}

func TestClassifyMultipleTopics(t *testing.T) {
	store := testStore()

	matches := store.Classify("tarifa hospitalaria")
	require.Len(t, matches, 2)
	assert.Equal(t, "Salud", matches[0].Topic)
	assert.Equal(t, "Energía", matches[1].Topic)
}

func TestClassifyEmptyKeywordTopicNeverMatches(t *testing.T) {
	store := NewStore([]Topic{{Name: "Trampa", Keywords: []string{""}}}, nil)

	assert.Empty(t, store.Classify("cualquier texto"))
}

func TestClassifyNoMatch(t *testing.T) {
	assert.Empty(t, testStore().Classify("texto sin coincidencias"))
}

func TestClassifyDeterministic(t *testing.T) {
	store := testStore()
	text := "tarifa de hospital"

	first := store.Classify(text)
	second := store.Classify(text)
	assert.Equal(t, first, second)
}

func TestInterestedAccounts(t *testing.T) {
	store := testStore()

	accounts := store.InterestedAccounts(store.Classify("reforma de salud"))
	assert.Equal(t, []string{"Farma SA", "Holding SA"}, accounts)
}

func TestInterestedAccountsDeduplicated(t *testing.T) {
	store := testStore()

	// Holding follows both topics but must appear once.
	accounts := store.InterestedAccounts(store.Classify("tarifa hospitalaria"))
	assert.Equal(t, []string{"Farma SA", "Holding SA", "Petro SA"}, accounts)
}

// Adding a match can only grow the interested set, never shrink it.
func TestInterestedAccountsMonotonic(t *testing.T) {
	store := testStore()

	smaller := store.InterestedAccounts([]Match{{Topic: "Salud", MatchedKeyword: "salud"}})
	larger := store.InterestedAccounts([]Match{
		{Topic: "Salud", MatchedKeyword: "salud"},
		{Topic: "Energía", MatchedKeyword: "tarifa"},
	})

	assert.Subset(t, larger, smaller)
}

func TestInterestedAccountsEmptyMatches(t *testing.T) {
	assert.Empty(t, testStore().InterestedAccounts(nil))
}
