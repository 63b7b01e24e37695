// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package relaytest

import (
	"strings"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
)

// Suite is an embeddable testify suite that gives each test a fresh viper instance.
type Suite struct {
	suite.Suite

	viper *viper.Viper
}

var _ suite.SetupTestSuite = (*Suite)(nil)

// SetupTest creates the viper instance for the current test.
func (suite *Suite) SetupTest() {
	suite.viper = viper.New()
}

// Viper returns the current test's viper instance.
func (suite *Suite) Viper() *viper.Viper {
	return suite.viper
}

// YAML merges a YAML document into the current test's viper instance.  Defaults
// already set on the instance are preserved.
func (suite *Suite) YAML(v string) {
	suite.viper.SetConfigType("yaml")
	suite.Require().NoError(
		suite.viper.MergeConfig(strings.NewReader(v)),
	)
}
