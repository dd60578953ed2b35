//go:build unit

package repository_test

import (
	"context"
	"testing"

	"unistay/internal/infra"
	"unistay/internal/infra/repository"
	"unistay/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturingDBTX records Exec calls so tests can assert on the exact
// arguments handed to pgx. Every argument must be a type pgx can encode
// without a custom plan, so value objects have to be unwrapped first.
type capturingDBTX struct {
	sql  string
	args []any
	tag  pgconn.CommandTag
}

func (c *capturingDBTX) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	c.sql = sql
	c.args = args
	return c.tag, nil
}

func (c *capturingDBTX) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	panic("not expected")
}

func (c *capturingDBTX) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	panic("not expected")
}

func TestBookingRepositoryCreate(t *testing.T) {
	t.Run("money columns are passed as plain cents", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		dbtx := &capturingDBTX{tag: pgconn.NewCommandTag("INSERT 0 1")}
		repo := repository.NewBookingRepository()

		id, err := repo.Create(context.Background(), dbtx, b)
		require.NoError(t, err)
		assert.Equal(t, b.ID(), id)

		require.Len(t, dbtx.args, 16)
		quote := b.Quote()
		assert.Equal(t, quote.DailyRate.Cents(), dbtx.args[8])
		assert.Equal(t, quote.Subtotal.Cents(), dbtx.args[9])
		assert.Equal(t, quote.ServiceFee.Cents(), dbtx.args[10])
		assert.Equal(t, quote.CleaningFee.Cents(), dbtx.args[11])
		assert.Equal(t, quote.SecurityDeposit.Cents(), dbtx.args[12])
		assert.Equal(t, quote.Total.Cents(), dbtx.args[13])

		for i, arg := range dbtx.args {
			switch arg.(type) {
			case int64, int, string:
			default:
				_, isStringer := arg.(interface{ String() string })
				assert.True(t, isStringer, "arg %d (%T) is not a pgx-encodable type", i, arg)
			}
		}
	})
}

func TestBookingRepositoryUpdate(t *testing.T) {
	t.Run("zero rows maps to not found", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		dbtx := &capturingDBTX{tag: pgconn.NewCommandTag("UPDATE 0")}
		repo := repository.NewBookingRepository()

		err = repo.Update(context.Background(), dbtx, b)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
