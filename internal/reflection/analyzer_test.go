package reflection_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/junioryono/beans/internal/reflection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test types
type Database struct {
	ConnectionString string
}

type Logger interface {
	Log(msg string)
}

type ConsoleLogger struct{}

func (c *ConsoleLogger) Log(msg string) {}

func NewDatabase() *Database {
	return &Database{ConnectionString: "memory"}
}

func NewDatabaseWithError() (*Database, error) {
	return &Database{ConnectionString: "memory"}, nil
}

func TestAnalyze(t *testing.T) {
	dbType := reflect.TypeOf((*Database)(nil))

	t.Run("function returning value", func(t *testing.T) {
		info, err := reflection.Analyze(NewDatabase)
		require.NoError(t, err)

		assert.True(t, info.IsFunc)
		assert.False(t, info.HasErrorReturn)
		assert.Equal(t, dbType, info.Type)
	})

	t.Run("function returning value and error", func(t *testing.T) {
		info, err := reflection.Analyze(NewDatabaseWithError)
		require.NoError(t, err)

		assert.True(t, info.IsFunc)
		assert.True(t, info.HasErrorReturn)
		assert.Equal(t, dbType, info.Type)
	})

	t.Run("instance", func(t *testing.T) {
		db := &Database{ConnectionString: "instance"}
		info, err := reflection.Analyze(db)
		require.NoError(t, err)

		assert.False(t, info.IsFunc)
		assert.Equal(t, dbType, info.Type)
	})

	t.Run("struct value instance", func(t *testing.T) {
		info, err := reflection.Analyze(Database{})
		require.NoError(t, err)
		assert.Equal(t, reflect.TypeOf(Database{}), info.Type)
	})
}

func TestAnalyze_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		factory any
		want    error
	}{
		{"nil", nil, reflection.ErrFactoryNil},
		{"typed nil pointer", (*Database)(nil), reflection.ErrFactoryNil},
		{"typed nil func", (func() *Database)(nil), reflection.ErrFactoryNil},
		{"with parameters", func(s string) *Database { return nil }, reflection.ErrFactoryParams},
		{"no return", func() {}, reflection.ErrFactoryNoReturn},
		{"too many returns", func() (*Database, *Database, error) { return nil, nil, nil }, reflection.ErrFactoryTooManyOut},
		{"second return not error", func() (*Database, string) { return nil, "" }, reflection.ErrFactorySecondReturn},
		{"only error", func() error { return nil }, reflection.ErrFactoryErrorOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := reflection.Analyze(tt.factory)
			assert.Nil(t, info)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFactoryInfo_Call(t *testing.T) {
	t.Run("function", func(t *testing.T) {
		calls := 0
		info, err := reflection.Analyze(func() *Database {
			calls++
			return &Database{ConnectionString: "fresh"}
		})
		require.NoError(t, err)

		first, err := info.Call()
		require.NoError(t, err)
		second, err := info.Call()
		require.NoError(t, err)

		assert.Equal(t, 2, calls)
		assert.NotSame(t, first, second)
		assert.Equal(t, "fresh", first.(*Database).ConnectionString)
	})

	t.Run("function error", func(t *testing.T) {
		boom := errors.New("boom")
		info, err := reflection.Analyze(func() (*Database, error) {
			return nil, boom
		})
		require.NoError(t, err)

		v, err := info.Call()
		assert.Nil(t, v)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("instance is returned as is", func(t *testing.T) {
		db := &Database{}
		info, err := reflection.Analyze(db)
		require.NoError(t, err)

		v, err := info.Call()
		require.NoError(t, err)
		assert.Same(t, db, v)
	})
}

func TestImplements(t *testing.T) {
	loggerType := reflect.TypeOf((*Logger)(nil)).Elem()

	assert.True(t, reflection.Implements(reflect.TypeOf(&ConsoleLogger{}), loggerType))
	assert.False(t, reflection.Implements(reflect.TypeOf(ConsoleLogger{}), loggerType))
	assert.False(t, reflection.Implements(reflect.TypeOf(&Database{}), loggerType))
	assert.True(t, reflection.Implements(reflect.TypeOf(&Database{}), reflect.TypeOf(&Database{})))
	assert.False(t, reflection.Implements(nil, loggerType))
}
