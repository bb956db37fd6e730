// Package mybatis provides the MyBatis binding strategy for dynsql.
//
// Placeholders carry the parameter path and the column's type metadata:
//
//	#{parameters.p1,jdbcType=INTEGER}
//	#{row.id2,jdbcType=INTEGER}
//	#{records[0],jdbcType=INTEGER}
package mybatis

import (
	"strings"

	"github.com/zoobzio/dynsql/internal/types"
)

// Strategy implements the MyBatis binding strategy.
type Strategy struct{}

// New creates a new MyBatis strategy.
func New() *Strategy {
	return &Strategy{}
}

// PlaceholderForColumn renders #{prefix.name[,jdbcType=T][,typeHandler=H][,javaType=J]}.
func (s *Strategy) PlaceholderForColumn(column types.Column, prefix, parameterName string) string {
	return s.binding(column, prefix+"."+parameterName)
}

// PlaceholderForValue renders #{prefix.name}.
func (*Strategy) PlaceholderForValue(prefix, parameterName string) string {
	return "#{" + prefix + "." + parameterName + "}"
}

// PlaceholderForRowInsert renders the column form with the row locator as prefix.
func (s *Strategy) PlaceholderForRowInsert(column types.Column, prefix, parameterName string) string {
	return s.PlaceholderForColumn(column, prefix, parameterName)
}

// PlaceholderForWholeRow renders #{locator[,jdbcType=T]...}.
func (s *Strategy) PlaceholderForWholeRow(column types.Column, locator string) string {
	return s.binding(column, locator)
}

// NextParameterName returns the next generated name.
func (*Strategy) NextParameterName(seq *types.Sequence) string {
	return types.FormatParameterName(seq)
}

func (*Strategy) binding(column types.Column, path string) string {
	var sb strings.Builder
	sb.WriteString("#{")
	sb.WriteString(path)
	if column.JDBCType != types.JDBCTypeNone {
		sb.WriteString(",jdbcType=")
		sb.WriteString(string(column.JDBCType))
	}
	if column.TypeHandler != "" {
		sb.WriteString(",typeHandler=")
		sb.WriteString(column.TypeHandler)
	}
	if column.JavaType != "" {
		sb.WriteString(",javaType=")
		sb.WriteString(column.JavaType)
	}
	sb.WriteString("}")
	return sb.String()
}

var _ types.Strategy = (*Strategy)(nil)
