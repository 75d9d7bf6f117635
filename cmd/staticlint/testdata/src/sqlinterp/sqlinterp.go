package sqlinterp

import (
	"context"
	"fmt"
)

type DB struct{}

func (DB) Raw(sql string, values ...interface{}) DB        { return DB{} }
func (DB) Where(query interface{}, args ...interface{}) DB { return DB{} }
func (DB) Exec(ctx context.Context, sql string, args ...any) error {
	return nil
}

const table = "urls"

func queries(ctx context.Context, db DB, userInput string) {
	db.Raw("SELECT * FROM urls WHERE id = ?", 1)
	db.Raw("SELECT * FROM " + table)
	db.Where("original_url LIKE ?", "%"+userInput+"%")

	db.Raw("SELECT * FROM urls WHERE original_url LIKE '%" + userInput + "%'") // want `SQL passed to Raw is built dynamically`
	db.Where(fmt.Sprintf("short_code = '%s'", userInput))                      // want `SQL passed to Where is built dynamically`
	_ = db.Exec(ctx, "DELETE FROM urls WHERE short_code = '"+userInput+"'")    // want `SQL passed to Exec is built dynamically`
	_ = db.Exec(ctx, "DELETE FROM urls WHERE short_code = $1", userInput)
}
