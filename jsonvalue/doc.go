// Package jsonvalue is the opaque generic JSON value fed to the schema
// engine. See the package comment on Value for the representation and
// ordering guarantees.
package jsonvalue
