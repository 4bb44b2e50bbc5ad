package repositories

import (
	"database/sql"

	intconfig "tripplanner/internal/config"
	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
)

// ArchiveRepository records completed generations. Schema:
//
//	CREATE TABLE itinerary_archive (
//	    id BIGINT AUTO_INCREMENT PRIMARY KEY,
//	    session_id VARCHAR(64) NOT NULL,
//	    destination VARCHAR(255) NOT NULL,
//	    days INT NOT NULL,
//	    model VARCHAR(64) NOT NULL,
//	    itinerary_text MEDIUMTEXT NOT NULL,
//	    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
//	);
type ArchiveRepository struct {
	DB *sql.DB
}

func (r ArchiveRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Enabled reports whether the archive store is usable.
func (r ArchiveRepository) Enabled() bool {
	return r.db() != nil
}

func (r ArchiveRepository) Insert(item models.ArchivedItinerary) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, domain.InternalError{Msg: "arsip itinerary tidak dikonfigurasi"}
	}

	res, err := db.Exec(`
        INSERT INTO itinerary_archive (session_id, destination, days, model, itinerary_text, created_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `, item.SessionID, item.Destination, item.Days, item.Model, item.Text, item.CreatedAt)
	if err != nil {
		return 0, domain.InternalError{Msg: "gagal menyimpan arsip itinerary", Err: err}
	}
	return res.LastInsertId()
}

func (r ArchiveRepository) ListRecent(limit int) ([]models.ArchivedItinerary, error) {
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "arsip itinerary tidak dikonfigurasi"}
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := db.Query(`
        SELECT id, session_id, destination, days, model, itinerary_text, created_at
        FROM itinerary_archive
        ORDER BY id DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, domain.InternalError{Msg: "gagal membaca arsip itinerary", Err: err}
	}
	defer rows.Close()

	out := []models.ArchivedItinerary{}
	for rows.Next() {
		var item models.ArchivedItinerary
		if err := rows.Scan(&item.ID, &item.SessionID, &item.Destination, &item.Days,
			&item.Model, &item.Text, &item.CreatedAt); err != nil {
			return nil, domain.InternalError{Msg: "gagal scan arsip itinerary", Err: err}
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
