package taxonomy

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadTopics reads the topic table from an XLSX workbook. The first sheet
// holds the topic name in the first column and one keyword in the second;
// a topic repeats across rows and its keywords accumulate in row order.
// Columns past the second are ignored. The header row is skipped, keywords
// are lowercased and trimmed, and rows with an empty name are dropped.
func LoadTopics(path string) ([]Topic, error) {
	rows, err := sheetRows(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load topics: %w", err)
	}

	index := make(map[string]int)
	var topics []Topic
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}
		at, ok := index[name]
		if !ok {
			at = len(topics)
			index[name] = at
			topics = append(topics, Topic{Name: name})
		}
		if len(row) > 1 {
			keyword := strings.ToLower(strings.TrimSpace(row[1]))
			if keyword != "" {
				topics[at].Keywords = append(topics[at].Keywords, keyword)
			}
		}
	}

	return topics, nil
}

// LoadAccounts reads the account table from an XLSX workbook. The first
// sheet holds one account per row: the account name in the first column,
// followed by the topics it subscribes to. Duplicate topics within one
// account are collapsed.
func LoadAccounts(path string) ([]Account, error) {
	rows, err := sheetRows(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	var accounts []Account
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}
		account := Account{Name: name}
		seen := make(map[string]bool)
		for _, cell := range row[1:] {
			topic := strings.TrimSpace(cell)
			if topic == "" || seen[topic] {
				continue
			}
			seen[topic] = true
			account.Topics = append(account.Topics, topic)
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}

// Load reads both tables and returns a ready Store.
func Load(topicsPath, accountsPath string) (*Store, error) {
	topics, err := LoadTopics(topicsPath)
	if err != nil {
		return nil, err
	}
	accounts, err := LoadAccounts(accountsPath)
	if err != nil {
		return nil, err
	}
	return NewStore(topics, accounts), nil
}

func sheetRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	return f.GetRows(sheet)
}
