
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

//包boost实现两种费用加速工作流：RBF将交易自身的一个输出减少以
//支付更多费用，CPFP构造一个花费未确认输出的高费用子交易。
//
//所有操作都是对调用方拥有的值的同步转换。调用方负责确保同一时间
//只有一个工作流在编辑一个交易。
package boost

import (
	"fmt"

	"github.com/btcsuite/btcutil"

	"github.com/btcsuite/feebump/rawtx"
)

//DefaultRelayFeePerKb是mempool的默认最低中继费用策略。
const DefaultRelayFeePerKb btcutil.Amount = 1e3

//Policy控制重新平衡后的输出值必须满足的最小值。
//
//RelayFeePerKb为零时，只要求输出值严格为正。否则还要求
//输出不是粉尘，即不低于按中继费用花费该输出成本的3倍。
type Policy struct {
	RelayFeePerKb btcutil.Amount
}

//DefaultPolicy只执行严格正值规则。
var DefaultPolicy = Policy{}

//DustThreshold返回具有给定脚本长度的输出不被视为粉尘的最小值。
//假设输出将被压缩的p2pkh输入花费，因为这是最常见的脚本类型。
func (p Policy) DustThreshold(scriptSize int) btcutil.Amount {
	totalSize := 8 + rawtx.VarIntSerializeSize(uint64(scriptSize)) +
		scriptSize + RedeemP2PKHInputSize

	byteFee := p.RelayFeePerKb / 1000
	relayFee := btcutil.Amount(totalSize) * byteFee
	return 3 * relayFee
}

//IsDust确定具有该值和脚本长度的输出在此策略下是否为粉尘。
func (p Policy) IsDust(value int64, scriptSize int) bool {
	return btcutil.Amount(value) < p.DustThreshold(scriptSize)
}

//MinRelayFee返回给定序列化大小的交易按此策略中继所需的最低费用。
//RelayFeePerKb为零时返回零。
func (p Policy) MinRelayFee(serializeSize int) btcutil.Amount {
	fee := p.RelayFeePerKb * btcutil.Amount(serializeSize) / 1000

	if fee == 0 && p.RelayFeePerKb > 0 {
		fee = p.RelayFeePerKb
	}

	if fee < 0 || fee > btcutil.MaxSatoshi {
		fee = btcutil.MaxSatoshi
	}

	return fee
}

//checkOutputValue验证重新平衡后的输出值。
func (p Policy) checkOutputValue(value int64, scriptSize int) error {
	if value <= 0 {
		str := fmt.Sprintf("output value would be %d", value)
		return boostError(ErrInsufficientOutputValue, str, nil)
	}
	if value > btcutil.MaxSatoshi {
		str := fmt.Sprintf("output value %d exceeds maximum %d", value,
			int64(btcutil.MaxSatoshi))
		return boostError(ErrInput, str, nil)
	}
	if p.IsDust(value, scriptSize) {
		str := fmt.Sprintf("output value %d is below the dust threshold "+
			"%d", value, int64(p.DustThreshold(scriptSize)))
		return boostError(ErrInsufficientOutputValue, str, nil)
	}
	return nil
}
