// Package platform exposes compile-time facts about the target architecture.
package platform

import "golang.org/x/sys/cpu"

// LittleEndian reports whether the target stores integers least-significant
// byte first. cpu.IsBigEndian is an untyped constant maintained per GOARCH,
// so branches on LittleEndian are resolved at compile time and the untaken
// algorithm is dropped from the build. Nothing is probed at run time.
const LittleEndian = !cpu.IsBigEndian
