// Package dirlog provides structured, leveled logging around Directory
// Agent operations. It wraps a zap.SugaredLogger behind a small set of
// operation-named helper methods, mirroring the teacher's own leveled
// logging package's call shape (Debug/Info/Warn/Error plus With*
// context-narrowing) but backed by go.uber.org/zap.
package dirlog
