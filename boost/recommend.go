
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

package boost

import "github.com/btcsuite/feebump/rawtx"

//RecommendedRBFFee返回以rate（聪/字节）替换大小为size字节的交易的
//建议总费用。该值仅供参考，不强制执行。
func RecommendedRBFFee(rate int64, size int) int64 {
	return rate * int64(size)
}

//RecommendedCPFPFee返回子交易的建议费用，使父子交易
//以rate一起确认。尚未序列化的子交易大小以ChildSizeEstimate代替。
func RecommendedCPFPFee(rate int64, parentSize int) int64 {
	return rate*int64(parentSize) + rate*ChildSizeEstimate
}

//Package是一对一起确认的父交易和子交易。
type Package struct {
	Parent *rawtx.Transaction
	Child  *rawtx.Transaction
}

//PackageFeeRate返回两笔交易合计的费率（聪/字节）。子交易尚未签名时，
//使用其签名后的最坏情况大小。
func (p *Package) PackageFeeRate() float64 {
	childSize := p.Child.Size()
	if p.Child.Hash() == nil {
		childSize = EstimateSignedSize(p.Child)
	}
	size := p.Parent.Size() + childSize
	if size == 0 {
		return 0
	}
	return float64(p.Parent.Fee+p.Child.Fee) / float64(size)
}
