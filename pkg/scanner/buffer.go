/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

// Sentinel is appended to every buffer so that the last lexeme always sees a
// terminating character.
const Sentinel = ' '

// Buffer is the scanner input as an indexable sequence of characters.
type Buffer struct {
	chars []rune
}

func NewBuffer(input string) *Buffer {
	chars := make([]rune, 0, len(input)+1)
	for _, r := range input {
		chars = append(chars, r)
	}
	chars = append(chars, Sentinel)

	return &Buffer{chars: chars}
}

// Len is the number of characters including the sentinel.
func (b *Buffer) Len() int {
	return len(b.chars)
}

// At returns the character at i, or 0 when i is out of range.
func (b *Buffer) At(i int) rune {
	if i < 0 || i >= len(b.chars) {
		return 0
	}
	return b.chars[i]
}

// Slice returns the text in [i, j), clamped to the buffer.
func (b *Buffer) Slice(i, j int) string {
	if i < 0 {
		i = 0
	}
	if j > len(b.chars) {
		j = len(b.chars)
	}
	if i >= j {
		return ""
	}
	return string(b.chars[i:j])
}

// Last is the index of the sentinel.
func (b *Buffer) Last() int {
	return len(b.chars) - 1
}
