// SPDX-License-Identifier: MIT

// Package cmdutil holds the command line plumbing shared by the unblack
// commands: common flags, YAML flag files, logrus setup and the
// zero-or-one-argument input rule.
package cmdutil
