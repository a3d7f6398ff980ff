
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

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcutil"
)

//AmountFlag是以BTC为单位解析的非负金额配置字段，
//实现了flags.Marshaler和flags.Unmarshaler。
type AmountFlag struct {
	btcutil.Amount
}

//NewAmountFlag返回具有默认金额的AmountFlag。
func NewAmountFlag(defaultValue btcutil.Amount) *AmountFlag {
	return &AmountFlag{defaultValue}
}

//MarshalFlag满足flags.Marshaler接口。
func (a *AmountFlag) MarshalFlag() (string, error) {
	return a.Amount.String(), nil
}

//UnmarshalFlag满足flags.Unmarshaler接口。接受可选的" BTC"后缀。
func (a *AmountFlag) UnmarshalFlag(value string) error {
	value = strings.TrimSuffix(strings.TrimSpace(value), " BTC")
	valueF64, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}
	amount, err := btcutil.NewAmount(valueF64)
	if err != nil {
		return err
	}
	if amount < 0 || amount > btcutil.MaxSatoshi {
		return fmt.Errorf("amount %v out of range", amount)
	}
	a.Amount = amount
	return nil
}
