package card

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/palemoky/tien-len/internal/apperrors"
)

// Suit 定义花色，数值即花色强度（黑桃最小，红心最大）
type Suit int

// Rank 定义点数，数值即点数强度（3 最小，2 最大）
type Rank int

// CardColor 定义牌的颜色
type CardColor int

const (
	Black CardColor = iota
	Red
)

const (
	Spade   Suit = iota // 黑桃
	Club                // 梅花
	Diamond             // 方块
	Heart               // 红心
	Joker               // 王牌
)

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Spade:   "♠",
	Club:    "♣",
	Diamond: "♦",
	Heart:   "♥",
	Joker:   "",
}

// suitLetters 花色字母映射表，用于配置文件和命令行输入
var suitLetters = map[string]Suit{
	"S": Spade,
	"C": Club,
	"D": Diamond,
	"H": Heart,
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return ""
}

func (s Suit) valid() bool {
	_, ok := suitSymbols[s]
	return ok
}

const (
	Rank3 Rank = iota + 3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ // Jack
	RankQ // Queen
	RankK // King
	RankA // Ace
	Rank2
	RankBlackJoker // BlackJoker
	RankRedJoker   // RedJoker
)

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	Rank3:          "3",
	Rank4:          "4",
	Rank5:          "5",
	Rank6:          "6",
	Rank7:          "7",
	Rank8:          "8",
	Rank9:          "9",
	Rank10:         "10",
	RankJ:          "J",
	RankQ:          "Q",
	RankK:          "K",
	RankA:          "A",
	Rank2:          "2",
	RankBlackJoker: "BJ",
	RankRedJoker:   "RJ",
}

// nameToRank 反查表，由 rankNames 生成
var nameToRank = func() map[string]Rank {
	m := make(map[string]Rank, len(rankNames)+1)
	for r, name := range rankNames {
		m[name] = r
	}
	m["T"] = Rank10
	return m
}()

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return "?"
}

func (r Rank) valid() bool {
	_, ok := rankNames[r]
	return ok
}

// IsJoker 是否为大小王
func (r Rank) IsJoker() bool {
	return r == RankBlackJoker || r == RankRedJoker
}

// StandardRanks 标准点数表，按强度升序
func StandardRanks() []Rank {
	return []Rank{Rank3, Rank4, Rank5, Rank6, Rank7, Rank8, Rank9, Rank10, RankJ, RankQ, RankK, RankA, Rank2}
}

// StandardSuits 标准花色表，按强度升序
func StandardSuits() []Suit {
	return []Suit{Spade, Club, Diamond, Heart}
}

// RankStrength 返回点数强度，不在枚举内的点数返回 ErrInvalidSymbol
func RankStrength(r Rank) (int, error) {
	if !r.valid() {
		return 0, fmt.Errorf("%w: rank %d", apperrors.ErrInvalidSymbol, int(r))
	}
	return int(r), nil
}

// SuitStrength 返回花色强度，不在枚举内的花色返回 ErrInvalidSymbol
func SuitStrength(s Suit) (int, error) {
	if !s.valid() {
		return 0, fmt.Errorf("%w: suit %d", apperrors.ErrInvalidSymbol, int(s))
	}
	return int(s), nil
}

// ParseRank 解析点数符号，例如 "3"、"10"、"T"、"J"、"A"、"2"
func ParseRank(s string) (Rank, error) {
	if r, ok := nameToRank[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return r, nil
	}
	return -1, fmt.Errorf("%w: 无法识别的点数 %q", apperrors.ErrInvalidSymbol, s)
}

// ParseSuit 解析花色符号，接受字母 (S/C/D/H) 或符号 (♠/♣/♦/♥)
func ParseSuit(s string) (Suit, error) {
	s = strings.TrimSpace(s)
	if suit, ok := suitLetters[strings.ToUpper(s)]; ok {
		return suit, nil
	}
	for suit, symbol := range suitSymbols {
		if symbol != "" && symbol == s {
			return suit, nil
		}
	}
	return -1, fmt.Errorf("%w: 无法识别的花色 %q", apperrors.ErrInvalidSymbol, s)
}

// Card 定义一张牌
type Card struct {
	Suit  Suit
	Rank  Rank
	Color CardColor
}

// New 创建一张牌并推导颜色
func New(r Rank, s Suit) Card {
	return Card{Rank: r, Suit: s, Color: colorOf(r, s)}
}

func colorOf(r Rank, s Suit) CardColor {
	if s == Heart || s == Diamond || r == RankRedJoker {
		return Red
	}
	return Black
}

// ParseCard 解析形如 "3S"、"10H"、"QD"、"BJ"、"RJ" 的牌
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch s {
	case "BJ":
		return New(RankBlackJoker, Joker), nil
	case "RJ":
		return New(RankRedJoker, Joker), nil
	}
	if utf8.RuneCountInString(s) < 2 {
		return Card{}, fmt.Errorf("%w: 无法识别的牌 %q", apperrors.ErrInvalidSymbol, s)
	}
	// 花色可能是多字节符号（♠♣♦♥），按最后一个 rune 切分
	_, size := utf8.DecodeLastRuneInString(s)
	r, err := ParseRank(s[:len(s)-size])
	if err != nil {
		return Card{}, err
	}
	suit, err := ParseSuit(s[len(s)-size:])
	if err != nil {
		return Card{}, err
	}
	return New(r, suit), nil
}

// MustParseCards 解析以空格分隔的牌，出错时 panic，仅用于测试和常量
func MustParseCards(s string) []Card {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			panic(err)
		}
		cards = append(cards, c)
	}
	return cards
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Value 比较键：点数优先，花色决定同点数大小
type Value struct {
	Rank int
	Suit int
}

// Value 返回牌的比较键
func (c Card) Value() Value {
	return Value{Rank: int(c.Rank), Suit: int(c.Suit)}
}

// Compare 返回 -1、0、1
func (v Value) Compare(o Value) int {
	switch {
	case v.Rank != o.Rank:
		if v.Rank < o.Rank {
			return -1
		}
		return 1
	case v.Suit < o.Suit:
		return -1
	case v.Suit > o.Suit:
		return 1
	}
	return 0
}

// Less 严格小于
func (v Value) Less(o Value) bool {
	return v.Compare(o) < 0
}

func (v Value) String() string {
	return fmt.Sprintf("(%d,%d)", v.Rank, v.Suit)
}
