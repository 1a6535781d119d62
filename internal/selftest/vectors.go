package selftest

import (
	"crypto"
	"encoding/hex"
	"fmt"
	"strings"
)

// The vectors below were generated with openssl's genrsa, rsa, rsautl and
// dgst tools against 512-bit keys. Ciphertext vectors exist only for the
// encryption tests; signature vectors are deterministic and byte-exact.

// encryptDecryptVector describes one encryption/decryption self-test.
// Encryption includes random padding, so a plaintext encrypts to many
// ciphertexts; the known ciphertext is checked via decryption only.
type encryptDecryptVector struct {
	name       string
	private    []byte
	public     []byte
	plaintext  []byte
	ciphertext []byte
}

// signatureVector describes one signature self-test. The signature is
// over the named hash of the plaintext.
type signatureVector struct {
	name      string
	private   []byte
	public    []byte
	plaintext []byte
	hash      crypto.Hash
	signature []byte
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(strings.NewReplacer("\n", "", "\t", "", " ", "").Replace(s))
	if err != nil {
		panic(fmt.Sprintf("selftest: bad vector hex: %v", err))
	}
	return b
}

// "Hello world" keypair, shared by the traditional PKCS#1 and the PKCS#8
// encrypt/decrypt tests.
var (
	hwPrivate = mustHex(`
		3082013b020100024100d2f10467f62c9607a6bd85acc1175de8f093940c4567
		2667de7efba8dabd07dfcf45046dbd698bfbc172c0fc0304f282c47b6a3eec53
		7ae34ea8c9f91f2a130d0203010001024049b861c9d3871187eb06214996d20b
		c7f50c1e998b47d96c439e2d657dccc28b1a6f2b55beb39fd1e29ade1dacec67
		eca5bf9c30d6f90a1a48f3c2933a172721022100fc8dfbee8aaa45194bf068b0
		02383e036b247720bd5e6c76dbc9e143a340626f022100d5d1b44d0340693f9a
		a74415281ea55fcf972112b3e61c9a8db7b4803a9cb043022071f0a0ab82f5c4
		8ce01ccb2e352228a02433646769e7f2a94109784eaa953e9302210085cc4dd9
		0b39d92275f249463beec1696d0b932492f261dfcce2b1ceb3deace50221009c
		236a95a6fe1ed80c3f6ee60aeb97d6361c80c102870d4dfe28021edee1cc72`)
	hwPrivatePKCS8 = mustHex(`
		30820155020100300d06092a864886f70d01010105000482013f3082013b0201
		00024100d2f10467f62c9607a6bd85acc1175de8f093940c45672667de7efba8
		dabd07dfcf45046dbd698bfbc172c0fc0304f282c47b6a3eec537ae34ea8c9f9
		1f2a130d0203010001024049b861c9d3871187eb06214996d20bc7f50c1e998b
		47d96c439e2d657dccc28b1a6f2b55beb39fd1e29ade1dacec67eca5bf9c30d6
		f90a1a48f3c2933a172721022100fc8dfbee8aaa45194bf068b002383e036b24
		7720bd5e6c76dbc9e143a340626f022100d5d1b44d0340693f9aa74415281ea5
		5fcf972112b3e61c9a8db7b4803a9cb043022071f0a0ab82f5c48ce01ccb2e35
		2228a02433646769e7f2a94109784eaa953e9302210085cc4dd90b39d92275f2
		49463beec1696d0b932492f261dfcce2b1ceb3deace50221009c236a95a6fe1e
		d80c3f6ee60aeb97d6361c80c102870d4dfe28021edee1cc72`)
	hwPublic = mustHex(`
		305c300d06092a864886f70d0101010500034b003048024100d2f10467f62c96
		07a6bd85acc1175de8f093940c45672667de7efba8dabd07dfcf45046dbd698b
		fbc172c0fc0304f282c47b6a3eec537ae34ea8c9f91f2a130d0203010001`)
	hwPlaintext  = []byte("Hello world\n")
	hwCiphertext = mustHex(`
		39ff5c54653e6aabc06291b2bf1d735bd54cbd160f24c9f5a7dd94d6f8aed3a0
		9f4dff8d813447ff2a8796d3175d934d7b27884fec439cedb3f219893843f941`)
)

var encryptDecryptVectors = []encryptDecryptVector{
	{
		name:       "encrypt-decrypt/pkcs1",
		private:    hwPrivate,
		public:     hwPublic,
		plaintext:  hwPlaintext,
		ciphertext: hwCiphertext,
	},
	{
		name:       "encrypt-decrypt/pkcs8",
		private:    hwPrivatePKCS8,
		public:     hwPublic,
		plaintext:  hwPlaintext,
		ciphertext: hwCiphertext,
	},
}

var signatureVectors = []signatureVector{
	{
		name: "signature/md5",
		private: mustHex(`
			3082013b020100024100f93f7844e20e25f10e94cdca6f9eea6ddfcda07ce221
			ebdea6014bb0764bd88b1983b4be45de3d46610f11e22cf5b063a084c0af4ebe
			6ad3843fec4217e925e102030100010240627d931fdd17ec244237c8ce0aa788
			495c9b9ba45d933bea623cb6d50719d779f03baba3a543358d5840a095c56328
			28da1328dfc905dc6946ff2afbe4d123a5022100fcef3b9d9d69f3660a2b52d6
			6114906e7d3c084b984400f2a4162dd1f9a01e37022100fc44cc7cc0269a0a6e
			da17057d668d291a44bf3376ae8de8b5edb86fdcfe10a7022076488a609314d1
			368edae3ca4d6c087f2321c7df523dbb13bd9881a5084fd0d1022100d9a31137
			df1e6e6ee9cbc568bb132a5d77882fdc5a5ba59a4aba581049fbf6a902210089
			e8475b20043b0fb9e01dabcfe872fd7d1785c8d8bd1a92e0bc7ac731beeff4`),
		public: mustHex(`
			305c300d06092a864886f70d0101010500034b003048024100f93f7844e20e25
			f10e94cdca6f9eea6ddfcda07ce221ebdea6014bb0764bd88b1983b4be45de3d
			46610f11e22cf5b063a084c0af4ebe6ad3843fec4217e925e10203010001`),
		plaintext: mustHex(`
			9d5b464227c0f14be59ed310a1eb16c3c68f1a1886c392152d65a040e13e2979
			7cd408ef53eb08073921b340ff4bc776b9123241cc5a865c2e0b05d856d4df6f
			2cf0bf4b6f68de394a3eae44b9c624b3832e9ff56d61c38ee88fa687583f3613
			f47ef02047873f216e513cf1efca9f779c914fd456c03911ab152c5ead4009e6
			dee5776019d40d7776248be6dda58d4a553adff829fb478afe9834f6307f0903
			2605d5461896ca965b66f28dfcfc37f7c76d6cd8240c6aec825c72f1fc05ed8e
			e8d98b8b670295`),
		hash: crypto.MD5,
		signature: mustHex(`
			db563deaae814b3b2e8eb8ee1361c6e7d750cd0d343afe9a8df8fbd67ebdddb3
			f9fbe0f8e77103e655d5f4023cb5bc952b6656ec2f8ea7aed980b3aaac4500a8`),
	},
	{
		name: "signature/sha1",
		private: mustHex(`
			3082013b020100024100e03a8d35e1922fea0d82602eb60b02d3f439fb06438e
			a17cc5ae0dc7ee83b363209234e2943dddbb6c6469682524814b4d485ad22914
			eb38dd3eb557459bed33020301000102403da91c47e2ddf67b2077e7c7309c5a
			8cbaae6f0f4be89f13d6b0846da4736712a97c75af62927b80af397d01b343c8
			0d177f825946b8e54eba5e715cba620691022100f7aab69cc8ad68a8d725b1b5
			91d4c7d669515d04edd8c6ea69d224be5e7c89a5022100e7c5f40135e016b513
			86145a6a8d0390ae7d3ac1fe8ca04ab4945058a4c673f7022100e2da166c6390
			1ac654532d848f70241f6bd65fea8ce5bbc5a96a17c7db8a1d15022100e42a7e
			e4762a2d908330da768c305813258388c59396d2f1d845adb726376bcf022073
			581f0acd0c8327cc15a21e07321ba3c6a6b883974845506c3745a5542a593c`),
		public: mustHex(`
			305c300d06092a864886f70d0101010500034b003048024100e03a8d35e1922f
			ea0d82602eb60b02d3f439fb06438ea17cc5ae0dc7ee83b363209234e2943ddd
			bb6c6469682524814b4d485ad22914eb38dd3eb557459bed330203010001`),
		plaintext: mustHex(`
			f74201576b70cc4adced12833fef27c13c85dd5e0a3498f921d3242a5ab2df60
			21287c5b7abecbeabcd60eae946421da28662f7148e5ea5938283eed3b954f3d
			722a00f3954df00271635abc84d1813f16cd283d47a2eea12f848a220288d783
			064a9fea0f154843586d39785a433fed6f68de9cfed3677408467d2022608c37
			354656193cfaa540ac44908aa580b232bcb43f3e5ed451a92ed97f5e32b12435
			88713a01865ca2e22d0230911caa6c24421b1aba30404983d9d7667e5c1a4b7f
			a68e8ad60c6575`),
		hash: crypto.SHA1,
		signature: mustHex(`
			a55a8a6781767ead9922f14764d2fb8145eb8556f87db8ec411784f72bbb2b8f
			b6b88fc6ab39bca372b363455ae0acf81c834884898a6bdf93a0c30b0e3d8080`),
	},
	{
		name: "signature/sha256",
		private: mustHex(`
			3082013a020100024100a5e9dba91a6ed64c2550fe6177087a8036cb88495ce8
			aa15f8b3d6785146863a5fd59fabfe748c530db53c7d2c35883fdea2ce469430
			a976ee25c55da6a63aa502030100010240144bbc4c3e688a9c7c00216e28d287
			b1c1823a64c711cb24aeecc8f2a4f69c9abb0594809bc121833623ba04202306
			48a7a4e6318ea173e56b834c3ab8d82261022100d4dfcb214a9a35520299cc40
			8365301f9d13d6d17910ce5beb25a2394edf1c29022100c7868fd988e9984b5c
			50069405593125a7a8e6952be3749351a88e3de2e0fa1d02206ee38131ff65a3
			1eec61e76737cb0f2d78aaabfd845e3fd0dc0647a228b6ca390220137d9f9bbe
			76233c695e1fe661c75eb7b0f31ce341904c98ff8719ae0df5b039022100b7eb
			cd012e23424f0c6fdec84fa769091234b6954db87f16d048174a9e6e5ee2`),
		public: mustHex(`
			305c300d06092a864886f70d0101010500034b003048024100a5e9dba91a6ed6
			4c2550fe6177087a8036cb88495ce8aa15f8b3d6785146863a5fd59fabfe748c
			530db53c7d2c35883fdea2ce469430a976ee25c55da6a63aa50203010001`),
		plaintext: mustHex(`
			60e7ba9d5ae32dfa5f47db93242cc4e261f3894d67adc8aef8e2fb520f8d187e
			30d88d9407927091af3b92a60f7a9b46858c2a5a785d1e13bfe612bdb1bb926d
			11ede1e46e884d0b51d6fd6ab29bd3fd56ecd9d6b8c5fd0cf7555fc56fbcbb78
			2f5008650f12ca5aea52d0947617e4ba97ba11bf057ea1fd7db5f13a7e6fa1aa
			97665d72764540b5227143e87776c81bd2d1330564a9c2a8404021ddcf077ef2
			4b803d0f67f6bdc2c7e39171d62da1ae810ced5448798a7805744d4ff0e03c41
			5c040b6857c5d6`),
		hash: crypto.SHA256,
		signature: mustHex(`
			022ec52a2b7fb480ca9d965baf1f725b6ef1697f4d41d59f00dc47f4688fdafc
			d12396111dc01b1d36662af92151cbb97d247d3837c4eadd3a6fa8656073773c`),
	},
}
