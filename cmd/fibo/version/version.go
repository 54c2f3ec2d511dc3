// Copyright (c) 2016-2019, Andreas T Jonsson
// All rights reserved.

package version

const Version = "0.1.0"

func About() string {
	return "print fibo version"
}
