// Package seed inserts the default data the application expects on a
// fresh database.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/schoolsafe/backend/internal/app/models"
	appRepos "github.com/schoolsafe/backend/internal/app/repositories"
	"github.com/schoolsafe/backend/internal/pkg/apperrors"
)

// defaultSchools are the schools the program visits from day one. They are
// inserted once; reruns hit the unique name constraint and are skipped.
var defaultSchools = []appModels.School{
	{Name: "Seoul Hana Elementary School", Address: "12 Hangang-daero, Yongsan-gu, Seoul", PhoneNumber: "02-555-0101", ContactPerson: "Kim Minji", Email: "office@hana-el.kr"},
	{Name: "Gangnam Middle School", Address: "45 Teheran-ro, Gangnam-gu, Seoul", PhoneNumber: "02-555-0102", ContactPerson: "Park Jisoo", Email: "admin@gangnam-ms.kr"},
	{Name: "Mapo High School", Address: "88 World Cup-ro, Mapo-gu, Seoul", PhoneNumber: "02-555-0103", ContactPerson: "Lee Haneul", Email: "contact@mapo-hs.kr"},
}

// CreateDefaultData inserts the default schools if they don't exist
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	schoolRepo := appRepos.NewSchoolRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default schools...")
	var finalErr error

	for i := range defaultSchools {
		school := defaultSchools[i]
		_, err := schoolRepo.Create(ctx, &school)
		if err != nil {
			if errors.Is(err, apperrors.ErrSchoolAlreadyExists) {
				continue
			}
			lgr.Error().Err(err).Str("name", school.Name).Msg("Error creating default school")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Info().Str("name", school.Name).Msg("Default school created")
	}

	return finalErr
}
