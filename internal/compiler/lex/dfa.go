package lex

import "github.com/dekarrin/mimic/internal/compiler/reader"

// trapState signals no transition exists for the given (state, char) pair.
const trapState = -1

// retractClass classifies how a final state's matched character relates to
// the lexeme: whether it belongs in it, or must be unread.
type retractClass int

const (
	nonFinal retractClass = iota
	finalNoRetract
	finalRetractOnce
	finalRetractTwice
)

// getState is the DFA transition function: given the current state and the
// next input character, returns the next state, or trapState if no
// transition exists.
func getState(c int, state int) int {
	if state == 0 {
		switch c {
		case '%':
			return 1
		case reader.EOF, 255:
			return 3
		case '*':
			return 4
		case '&':
			return 5
		case '~':
			return 8
		case '\n':
			return 9
		case '@':
			return 10
		case '[':
			return 13
		case '-':
			return 14
		case '+':
			return 15
		case '(':
			return 16
		case '=':
			return 17
		case ')':
			return 19
		case ';':
			return 20
		case ':':
			return 21
		case '!':
			return 22
		case '/':
			return 24
		case '.':
			return 25
		case ']':
			return 26
		case '\t', ' ':
			return 27
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			return 29
		case '#':
			return 40
		case '_':
			return 43
		case ',':
			return 64
		case 'b', 'c', 'd':
			return 47
		case 'a', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p',
			'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z':
			return 48
		case '>':
			return 54
		case '<':
			return 57
		default:
			return trapState
		}
	}

	switch {
	case state == 1:
		if c == '\n' {
			return 2
		}
		return 1
	case state == 5 && c == '&':
		return 6
	case state == 6 && c == '&':
		return 7
	case state == 10 && c == '@':
		return 11
	case state == 11 && c == '@':
		return 12
	case state == 17 && c == '=':
		return 18
	case state == 22 && c == '=':
		return 23
	case state == 27:
		if c == '\t' || c == ' ' {
			return 27
		}
		return 28
	case state == 29:
		if c >= '0' && c <= '9' {
			return 29
		} else if c == '.' {
			return 30
		}
		return 39
	case state == 30:
		if c >= '0' && c <= '9' {
			return 31
		}
		return 38
	case state == 31 && c >= '0' && c <= '9':
		return 32
	case state == 32:
		if c == 'E' || c == 'e' {
			return 33
		}
		return 37
	case state == 33:
		if c == '+' || c == '-' {
			return 34
		} else if c >= '0' && c <= '9' {
			return 35
		}
	case state == 34:
		if c >= '0' && c <= '9' {
			return 35
		}
	case state == 35:
		if c >= '0' && c <= '9' {
			return 36
		}
	case state == 40 && c >= 'a' && c <= 'z':
		return 41
	case state == 41:
		if c >= 'a' && c <= 'z' {
			return 41
		}
		return 42
	case state == 43 && ((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')):
		return 44
	case state == 44:
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return 44
		} else if c >= '0' && c <= '9' {
			return 45
		}
		return 46
	case state == 45:
		if c >= '0' && c <= '9' {
			return 45
		}
		return 46
	case state == 47:
		if c >= 'a' && c <= 'z' {
			return 48
		} else if c >= '2' && c <= '7' {
			return 50
		}
		return 53
	case state == 48:
		if c >= 'a' && c <= 'z' {
			return 48
		}
		return 49
	case state == 50:
		if c >= 'b' && c <= 'd' {
			return 50
		} else if c >= '2' && c <= '7' {
			return 51
		}
		return 52
	case state == 51:
		if c >= '2' && c <= '7' {
			return 51
		}
		return 52
	case state == 54:
		if c == '=' {
			return 55
		}
		return 56
	case state == 57:
		if c == '=' {
			return 58
		} else if c == '-' {
			return 59
		}
		return 63
	case state == 59:
		if c == '-' {
			return 60
		}
		return 62
	case state == 60:
		if c == '-' {
			return 61
		}
		return trapState
	}
	return trapState
}

// getStateDetails classifies a state as final (and, if so, its retract
// class) or non-final. Retracting states perform the retraction as a side
// effect against buf, matching the reference implementation's coupling of
// classification and retraction.
func getStateDetails(buf *reader.TwinBuffer, state int) retractClass {
	switch state {
	case 2, 3, 4, 7, 8, 9, 12, 13, 14, 15, 16, 18, 19, 20, 21, 23, 24, 25, 26,
		64, 36, 55, 58, 61:
		return finalNoRetract
	case 28, 37, 39, 42, 46, 49, 52, 53, 56, 63:
		buf.Retract(1)
		return finalRetractOnce
	case 38, 62:
		buf.Retract(2)
		return finalRetractTwice
	default:
		return nonFinal
	}
}
