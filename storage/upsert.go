package storage

import (
	"fmt"
	"strings"

	"github.com/go-pg/pg/v10/orm"
)

// GenerateUpsertStrings builds the conflict target and update clause needed to
// upsert a model: the conflict target lists the model's primary key columns
// and the update clause overwrites every other column from the excluded row.
// The update clause is empty for models whose columns are all keys.
func GenerateUpsertStrings(m interface{}) (string, string) {
	table := orm.NewQuery(nil, m).TableModel().Table()

	pk := make(map[string]bool, len(table.PKs))
	cols := make([]string, 0, len(table.PKs))
	for _, f := range table.PKs {
		pk[f.SQLName] = true
		cols = append(cols, fmt.Sprintf("%q", f.SQLName))
	}

	sets := make([]string, 0, len(table.Fields))
	for _, f := range table.Fields {
		if pk[f.SQLName] {
			continue
		}
		sets = append(sets, fmt.Sprintf("%q = EXCLUDED.%q", f.SQLName, f.SQLName))
	}

	return "(" + strings.Join(cols, ", ") + ")", strings.Join(sets, ", ")
}
