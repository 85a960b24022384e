// Package taxonomy holds the topic and account tables that drive
// classification: topics map keywords to subject areas, accounts declare
// which topics they follow. Both tables are loaded once at startup and
// immutable afterwards.
package taxonomy

import (
	"sort"
	"strings"
)

// Topic is one subject area with the keywords that signal it.
type Topic struct {
	Name     string
	Keywords []string
}

// Account is one client with the topics it follows.
type Account struct {
	Name   string
	Topics []string
}

// Match records that a text matched a topic, and through which keyword.
type Match struct {
	Topic          string
	MatchedKeyword string
}

// Store is the loaded taxonomy. Topics keep their load order; Classify
// results follow it.
type Store struct {
	topics   []Topic
	accounts []Account
}

// NewStore builds a Store from already-validated tables.
func NewStore(topics []Topic, accounts []Account) *Store {
	return &Store{topics: topics, accounts: accounts}
}

// Topics returns the topic table in load order.
func (s *Store) Topics() []Topic {
	return s.topics
}

// Accounts returns the account table in load order.
func (s *Store) Accounts() []Account {
	return s.accounts
}

// Classify matches a text against every topic. Matching is case-insensitive
// substring containment; the first keyword that hits wins for its topic and
// the rest of that topic's keywords are skipped. A topic with no keywords
// never matches.
func (s *Store) Classify(text string) []Match {
	lowered := strings.ToLower(text)

	var matches []Match
	for _, topic := range s.topics {
		for _, keyword := range topic.Keywords {
			if keyword == "" {
				continue
			}
			if strings.Contains(lowered, keyword) {
				matches = append(matches, Match{Topic: topic.Name, MatchedKeyword: keyword})
				break
			}
		}
	}
	return matches
}

// InterestedAccounts returns the names of every account following at least
// one matched topic, deduplicated and sorted.
func (s *Store) InterestedAccounts(matches []Match) []string {
	matched := make(map[string]bool, len(matches))
	for _, m := range matches {
		matched[m.Topic] = true
	}

	seen := make(map[string]bool)
	var names []string
	for _, account := range s.accounts {
		if seen[account.Name] {
			continue
		}
		for _, topic := range account.Topics {
			if matched[topic] {
				seen[account.Name] = true
				names = append(names, account.Name)
				break
			}
		}
	}

	sort.Strings(names)
	return names
}
