package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("public_id", "first_name", "last_name").
		From("fighters").
		Where(Eq("public_id", "f1")).
		OrderBy("id").
		Limit(1).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT public_id, first_name, last_name FROM fighters WHERE public_id = $1 ORDER BY id LIMIT 1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "f1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_OrCondition(t *testing.T) {
	query, args, err := Select("COUNT(*)").
		From("fights").
		Where(Or(Eq("fighter1_public_id", "f1"), Eq("fighter2_public_id", "f1"))).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT COUNT(*) FROM fights WHERE (fighter1_public_id = $1 OR fighter2_public_id = $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "f1" || args[1] != "f1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("fighter_aliases").
		Columns("public_id", "fighter_public_id", "first_name", "last_name").
		Values("a1", "f1", "jon", "jonez").
		Suffix("ON CONFLICT (first_name, last_name) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO fighter_aliases (public_id, fighter_public_id, first_name, last_name) VALUES ($1, $2, $3, $4) ON CONFLICT (first_name, last_name) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("fighters").
		Set("total_fights", 15).
		SetExpr("updated_at", "NOW()").
		Where(Eq("public_id", "f1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE fighters SET total_fights = $1, updated_at = NOW() WHERE public_id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != 15 || args[1] != "f1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("fighter_follows").
		Where(
			Eq("fighter_public_id", "f2"),
			Expr("user_id IN (SELECT user_id FROM fighter_follows WHERE fighter_public_id = ?)", "f1"),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM fighter_follows WHERE fighter_public_id = $1 AND user_id IN (SELECT user_id FROM fighter_follows WHERE fighter_public_id = $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "f2" || args[1] != "f1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder_RequiresWhere(t *testing.T) {
	if _, _, err := DeleteFrom("fighters").ToSQL(); err == nil {
		t.Fatal("expected error for delete without conditions")
	}
}
