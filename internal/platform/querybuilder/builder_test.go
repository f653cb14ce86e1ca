package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "title").
		From("blogs").
		Where(Eq("category", "League News")).
		OrderBy("date DESC").
		Limit(10).
		Offset(20).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, title FROM blogs WHERE category = $1 ORDER BY date DESC LIMIT 10 OFFSET 20"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "League News" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_InAndIsNull(t *testing.T) {
	query, args, err := Select("id").
		From("matches").
		Where(In("status", []any{"upcoming", "running"}), IsNull("score_home")).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM matches WHERE status IN ($1, $2) AND score_home IS NULL"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("sponsors").
		Columns("id", "name").
		Values("s1", "Northside Deli").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO sponsors (id, name) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "s1" || args[1] != "Northside Deli" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type sponsorRow struct {
		PublicID string `db:"public_id"`
		Name     string `db:"name"`
		Website  string `db:"website,omitempty"`
		Skipped  string `db:"-"`
		Untagged string
	}

	query, args, err := InsertModel("sponsors", sponsorRow{
		PublicID: "s1",
		Name:     "Northside Deli",
		Website:  "https://northside.example",
		Skipped:  "nope",
	}, "ON CONFLICT (public_id) DO NOTHING")
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO sponsors (public_id, name, website) VALUES ($1, $2, $3) ON CONFLICT (public_id) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "s1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel_RejectsTaglessStruct(t *testing.T) {
	type bare struct {
		Name string
	}

	if _, _, err := InsertModel("sponsors", bare{Name: "x"}, ""); err == nil {
		t.Fatal("expected error for struct without db tags")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("teams").
		Set("name", "Eastwood High").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", "t1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE teams SET name = $1, updated_at = NOW() WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Eastwood High" || args[1] != "t1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("players").
		Where(Eq("id", "p1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM players WHERE id = $1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "p1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder_RequiresConditions(t *testing.T) {
	if _, _, err := DeleteFrom("players").ToSQL(); err == nil {
		t.Fatal("expected error for delete without conditions")
	}
}
