// Package win is the Windows backend: Win32 window enumeration and input
// injection, plus a minimal UI Automation client for the navigation pane.
// It registers itself with the platform package from an init function; on
// other platforms only the thread-confinement helper compiles and the blank
// import is a no-op.
package win
