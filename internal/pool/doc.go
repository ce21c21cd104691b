// Package pool generates quiz and infographic scripts from a fixed set of
// engineering problem templates. Each template carries randomizable
// parameters, closed-form math, and formatting hooks, so every generated
// script is a unique variant without calling any external service.
package pool
