package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCents_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("$0.00", Cents(0).String())
	a.Equal("$5.00", Dollars(5).String())
	a.Equal("$2.50", Cents(250).String())
	a.Equal("-$2.50", Cents(-250).String())
	a.Equal("$100.05", Cents(10005).String())
}

func TestCents_TimesThreeHalves(t *testing.T) {
	a := assert.New(t)
	a.Equal(Cents(3000), Dollars(20).TimesThreeHalves())
	a.Equal(Cents(7500), Dollars(50).TimesThreeHalves())
}

func TestCents_Half(t *testing.T) {
	a := assert.New(t)
	a.Equal(Dollars(10), Dollars(20).Half())
	a.Equal(Cents(250), Dollars(5).Half())
}

func TestParseDollars(t *testing.T) {
	a := assert.New(t)

	c, err := ParseDollars("50")
	a.NoError(err)
	a.Equal(Dollars(50), c)

	c, err = ParseDollars(" $5 ")
	a.NoError(err)
	a.Equal(Dollars(5), c)

	c, err = ParseDollars("10.00")
	a.NoError(err)
	a.Equal(Dollars(10), c)

	_, err = ParseDollars("10.50")
	a.Equal(ErrNotWholeDollars, err)

	_, err = ParseDollars("")
	a.Error(err)

	_, err = ParseDollars("abc")
	a.Error(err)
}
