
//此源码被清华学神尹成大魔王专业翻译分析并修改
//尹成QQ77025077
//尹成微信18510341407
//尹成所在QQ群721929980
//尹成邮箱 yinc13@mails.tsinghua.edu.cn
//尹成毕业于清华大学,微软区块链领域全球最有价值专家
//https://mvp.microsoft.com/zh-cn/PublicProfile/4033620
//版权所有（c）2016 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package cfgutil

import "strconv"

//ExplicitString是一个字符串配置字段，记录其值是由flags包
//设置的还是仍为默认值。这样可以区分未修改的默认值和
//被显式设置为相同值的情况，例如在appdata改变时
//重新推导配置文件路径。
type ExplicitString struct {
	Value         string
	explicitlySet bool
}

//NewExplicitString返回具有默认值的ExplicitString。
func NewExplicitString(defaultValue string) *ExplicitString {
	return &ExplicitString{Value: defaultValue}
}

//ExplicitlySet报告值是否通过flags.Unmarshaler设置。
func (e *ExplicitString) ExplicitlySet() bool { return e.explicitlySet }

//MarshalFlag实现flags.Marshaler接口。
func (e *ExplicitString) MarshalFlag() (string, error) { return e.Value, nil }

//UnmarshalFlag实现flags.Unmarshaler接口。
func (e *ExplicitString) UnmarshalFlag(value string) error {
	e.Value = value
	e.explicitlySet = true
	return nil
}

//String返回当前值。
func (e *ExplicitString) String() string { return e.Value }

//ExplicitInt64是记录是否被显式设置的整数配置字段，
//使显式的0与未设置相区分。
type ExplicitInt64 struct {
	Value         int64
	explicitlySet bool
}

//ExplicitlySet报告值是否通过flags.Unmarshaler设置。
func (e *ExplicitInt64) ExplicitlySet() bool { return e.explicitlySet }

//MarshalFlag实现flags.Marshaler接口。
func (e *ExplicitInt64) MarshalFlag() (string, error) {
	return strconv.FormatInt(e.Value, 10), nil
}

//UnmarshalFlag实现flags.Unmarshaler接口。
func (e *ExplicitInt64) UnmarshalFlag(value string) error {
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return err
	}
	e.Value = v
	e.explicitlySet = true
	return nil
}
