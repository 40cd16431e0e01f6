package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"animal-zoo/internal/domain/animals"
	"animal-zoo/internal/domain/zoo"
)

type ResidentsRepo struct {
	db *sql.DB
}

func NewResidentsRepo(db *sql.DB) *ResidentsRepo {
	return &ResidentsRepo{db: db}
}

const residentColumns = `
	id, kind,
	name, age, health,
	breed, tricks,
	color, lives,
	wingspan, can_fly,
	admitted_at, updated_at
`

func (r *ResidentsRepo) Create(ctx context.Context, res zoo.Resident) error {
	s := animals.Snapshot(res.Animal)
	tricks, err := encodeTricks(s.Tricks)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO residents (`+residentColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		res.ID,
		string(s.Kind),
		s.Name,
		s.Age,
		s.Health,
		s.Breed,
		tricks,
		s.Color,
		s.Lives,
		s.Wingspan,
		s.CanFly,
		res.AdmittedAt,
		res.UpdatedAt,
	)
	return err
}

// Update persiste el estado mutable de la variante. name, age y kind no
// cambian después de la admisión.
func (r *ResidentsRepo) Update(ctx context.Context, res zoo.Resident) error {
	s := animals.Snapshot(res.Animal)
	tricks, err := encodeTricks(s.Tricks)
	if err != nil {
		return err
	}

	out, err := r.db.ExecContext(ctx, `
		UPDATE residents
		SET
			health = $2,
			tricks = $3,
			lives = $4,
			can_fly = $5,
			updated_at = $6
		WHERE id = $1
	`,
		res.ID,
		s.Health,
		tricks,
		s.Lives,
		s.CanFly,
		res.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := out.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ResidentsRepo) GetByID(ctx context.Context, id string) (zoo.Resident, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return zoo.Resident{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+residentColumns+`
		FROM residents
		WHERE id = $1
	`, id)

	res, err := scanResident(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zoo.Resident{}, ErrNotFound
		}
		return zoo.Resident{}, err
	}
	return res, nil
}

func (r *ResidentsRepo) List(ctx context.Context) ([]zoo.Resident, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+residentColumns+`
		FROM residents
		ORDER BY admitted_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]zoo.Resident, 0)
	for rows.Next() {
		res, err := scanResident(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}

	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResident(sc scanner) (zoo.Resident, error) {
	var (
		res    zoo.Resident
		s      animals.State
		kind   string
		tricks []byte
	)
	if err := sc.Scan(
		&res.ID,
		&kind,
		&s.Name,
		&s.Age,
		&s.Health,
		&s.Breed,
		&tricks,
		&s.Color,
		&s.Lives,
		&s.Wingspan,
		&s.CanFly,
		&res.AdmittedAt,
		&res.UpdatedAt,
	); err != nil {
		return zoo.Resident{}, err
	}

	s.Kind = animals.Kind(kind)
	if len(tricks) > 0 {
		if err := json.Unmarshal(tricks, &s.Tricks); err != nil {
			return zoo.Resident{}, err
		}
	}

	a, err := animals.Restore(s)
	if err != nil {
		return zoo.Resident{}, err
	}
	res.Animal = a
	return res, nil
}

// tricks es JSONB; lo mandamos como texto para no depender del type map de pgx.
func encodeTricks(tricks []string) (string, error) {
	if tricks == nil {
		tricks = []string{}
	}
	b, err := json.Marshal(tricks)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
