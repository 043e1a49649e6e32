package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/idilsaglam/eatsplit/internal/model"
)

// JSON seed file for the roster. Read once at startup, never written back:
// balances live only as long as the session.
//
//	[{"id": "118836", "name": "Clark", "image": "https://...", "balance": -7}]

// Load reads friends from path. The file must exist; an empty list is
// returned as is.
func Load(path string) ([]model.Friend, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var friends []model.Friend
	if err := json.Unmarshal(b, &friends); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	for i, f := range friends {
		if f.ID == "" || f.Name == "" {
			return nil, fmt.Errorf("entry %d: id and name are required", i)
		}
	}
	return friends, nil
}
