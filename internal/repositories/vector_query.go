package repositories

import (
	"strings"

	"github.com/pgvector/pgvector-go"
)

// Vector queries are assembled in a single pass: every clause that is
// appended to the SQL text appends its own placeholder arguments in the same
// step, so the vector and limit parameters always bind after any optional
// filters regardless of which filters are present.

func buildDestinationVectorQuery(vector pgvector.Vector, limit int) (string, []interface{}) {
	var sql strings.Builder
	args := make([]interface{}, 0, 2)

	sql.WriteString(`SELECT id, name, region, description FROM destinations WHERE description_embedding IS NOT NULL`)

	sql.WriteString(" ORDER BY description_embedding <=> ? LIMIT ?")
	args = append(args, vector, clampLimit(limit))

	return sql.String(), args
}

func buildHotelVectorQuery(vector pgvector.Vector, destinationID *int64, maxPrice *float64, limit int) (string, []interface{}) {
	var sql strings.Builder
	args := make([]interface{}, 0, 4)

	sql.WriteString(`SELECT h.id, h.destination_id, d.name AS destination_name, h.name, h.price_per_night, h.description FROM hotels h JOIN destinations d ON h.destination_id = d.id WHERE h.description_embedding IS NOT NULL`)

	if destinationID != nil {
		sql.WriteString(" AND h.destination_id = ?")
		args = append(args, *destinationID)
	}
	if maxPrice != nil {
		sql.WriteString(" AND h.price_per_night <= ?")
		args = append(args, *maxPrice)
	}

	sql.WriteString(" ORDER BY h.description_embedding <=> ? LIMIT ?")
	args = append(args, vector, clampLimit(limit))

	return sql.String(), args
}

func buildActivityVectorQuery(vector pgvector.Vector, destinationID *int64, limit int) (string, []interface{}) {
	var sql strings.Builder
	args := make([]interface{}, 0, 3)

	sql.WriteString(`SELECT a.id, a.destination_id, d.name AS destination_name, a.name, a.season, a.description FROM activities a JOIN destinations d ON a.destination_id = d.id WHERE a.description_embedding IS NOT NULL`)

	if destinationID != nil {
		sql.WriteString(" AND a.destination_id = ?")
		args = append(args, *destinationID)
	}

	sql.WriteString(" ORDER BY a.description_embedding <=> ? LIMIT ?")
	args = append(args, vector, clampLimit(limit))

	return sql.String(), args
}

func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	return limit
}
