package so

import (
	"github.com/smartystreets/assertions"
)

// set of assertions available to So
var (
	ShouldEqual       = assertions.ShouldEqual
	ShouldNotEqual    = assertions.ShouldNotEqual
	ShouldResemble    = assertions.ShouldResemble
	ShouldNotResemble = assertions.ShouldNotResemble
	ShouldBeNil       = assertions.ShouldBeNil
	ShouldNotBeNil    = assertions.ShouldNotBeNil
	ShouldBeTrue      = assertions.ShouldBeTrue
	ShouldBeFalse     = assertions.ShouldBeFalse
	ShouldBeZeroValue = assertions.ShouldBeZeroValue

	ShouldBeGreaterThan = assertions.ShouldBeGreaterThan
	ShouldBeLessThan    = assertions.ShouldBeLessThan

	ShouldContain          = assertions.ShouldContain
	ShouldNotContain       = assertions.ShouldNotContain
	ShouldContainKey       = assertions.ShouldContainKey
	ShouldNotContainKey    = assertions.ShouldNotContainKey
	ShouldBeEmpty          = assertions.ShouldBeEmpty
	ShouldNotBeEmpty       = assertions.ShouldNotBeEmpty
	ShouldHaveLength       = assertions.ShouldHaveLength
	ShouldStartWith        = assertions.ShouldStartWith
	ShouldEndWith          = assertions.ShouldEndWith
	ShouldBeBlank          = assertions.ShouldBeBlank
	ShouldNotBeBlank       = assertions.ShouldNotBeBlank
	ShouldContainSubstring = assertions.ShouldContainSubstring

	ShouldHaveSameTypeAs = assertions.ShouldHaveSameTypeAs
	ShouldImplement      = assertions.ShouldImplement
	ShouldHappenAfter    = assertions.ShouldHappenAfter

	ShouldBeError = assertions.ShouldBeError
)
