package insights

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGreeting(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{4, "Доброй ночи"},
		{5, "Доброе утро"},
		{6, "Доброе утро"},
		{11, "Доброе утро"},
		{12, "Добрый день"},
		{13, "Добрый день"},
		{17, "Добрый день"},
		{18, "Добрый вечер"},
		{19, "Добрый вечер"},
		{22, "Добрый вечер"},
		{23, "Доброй ночи"},
		{0, "Доброй ночи"},
		{2, "Доброй ночи"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.hour), func(t *testing.T) {
			assert.Equal(t, tt.want, Greeting(tt.hour))
		})
	}
}
