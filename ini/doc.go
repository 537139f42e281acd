// Copyright 2026 The cfgkit Authors.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package ini provides an in-memory store for a minimal dialect of the
INI configuration format. See https://en.wikipedia.org/wiki/INI_file.

A File holds an ordered sequence of sections; each section holds an
ordered sequence of key=value pairs. One distinguished section, the
global section, has no name and collects pairs written before any
section header. In this API the global section is identified by the
empty string ("").

The store is single-valued: section names are unique, keys are unique
within their section, and setting an existing key replaces its value
in place without changing its position. Insertion order of sections
and of keys within a section is preserved and determines
serialization order.

# Syntax

Lines are terminated by LF, CR, or CRLF. Leading and trailing ASCII
whitespace (space, tab, CR, LF) on each line is ignored. A line whose
first non-whitespace character is a semicolon (';') or hash ('#') is a
comment. A section is started by writing its name in square brackets
on its own line:

	[section]
	key1=value1
	key2=value2

The section name is the text between the brackets, trimmed of
whitespace. A key=value line is split at its first equals sign ('=');
both halves are trimmed.

Parsing is tolerant: a section header with no closing bracket, a line
with no equals sign, or a pair with an empty key is silently skipped,
and parsing continues with the next line. Repeating a section header
reopens the existing section rather than duplicating it.

Values are written verbatim with no quoting or escaping, so values
containing newlines or leading/trailing whitespace will not round-trip
through serialization. Multi-line values, nested sections, and
repeated keys within a section are not part of this dialect.

A File is safe for concurrent reads, but not for mutation concurrent
with any other access; callers needing that must synchronize.
*/
package ini
