package options

import "errors"

// ErrNoDirectories indicates that no root directory was given.
var ErrNoDirectories = errors.New("no directories specified")

// OrderNote explains how rule flags combine. It follows the usage text
// whenever ErrNoDirectories is reported.
const OrderNote = `Accept/reject flags are applied in the same order as they were specified in the
argument list.`
