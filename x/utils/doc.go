/*
Package utils contains the decorators every application stacks in front of
its router: logging, panic recovery, metrics, savepoints and result taggers.
*/
package utils
