/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

// catalogue is the static AI table the dictionary is compiled from, one line
// per AI, in a restricted form of the GS1 Barcode Syntax Dictionary format:
//
//	code [*] syntax [req=a,b] [ex=a,b] # title
//
// where:
//   - code is the 2-4 digit AI; a trailing 'n' expands to ten entries
//     (one per final digit), each carrying that digit as its implied
//     decimal exponent when the syntax has the "dec" linter;
//   - '*' marks membership in the predefined-length table (no separator
//     required after the value);
//   - syntax is N (numeric) or X (CSET 82) followed by a length ("N14"),
//     a range ("N3..15"), or a bounded range from one ("X..20"), plus
//     optional comma linters: csum (trailing mod-10 check digit), dec
//     (implied decimal point), yymmdd / yymmd0 / yyyymmdd / yymmddhh
//     (date layouts, with yymmd0 permitting day 00);
//   - req= and ex= list advisory pairing constraints;
//   - everything after '#' is the data title.
//
// Keep this table sorted by code; build() rejects duplicates.
const catalogue = `
00   * N18,csum                        # SSCC
01   * N14,csum           ex=02,255   # GTIN
02   * N14,csum  req=37   ex=01       # CONTENT
10     X..20     req=01,02            # BATCH/LOT
11   * N6,yymmd0 req=01               # PROD DATE
12   * N6,yymmd0                      # DUE DATE
13   * N6,yymmd0                      # PACK DATE
15   * N6,yymmd0                      # BEST BEFORE OR BEST BY
16   * N6,yymmd0                      # SELL BY
17   * N6,yymmd0 req=01               # USE BY OR EXPIRY
20   * N2                             # VARIANT
21     X..20     req=01               # SERIAL
22     X..20     req=01               # CPV
235    X..28     req=01               # TPX
240    X..30     req=01,02            # ADDITIONAL ID
241    X..30     req=01,02            # CUST. PART NO.
242    N..6      req=01,02            # MTO VARIANT
243    X..20     req=01               # PCN
250    X..30     req=01,21            # SECONDARY SERIAL
251    X..30     req=01               # REF. TO SOURCE
253    X14..30                        # GDTI
254    X..20     req=414              # GLN EXTENSION COMPONENT
255    N14..25             ex=01      # GCN
30     N..8      req=01,02            # VAR COUNT
310n * N6,dec    req=01               # NET WEIGHT (kg)
311n * N6,dec                         # LENGTH (m)
312n * N6,dec                         # WIDTH (m)
313n * N6,dec                         # HEIGHT (m)
314n * N6,dec                         # AREA (m2)
315n * N6,dec                         # NET VOLUME (l)
316n * N6,dec                         # NET VOLUME (m3)
320n * N6,dec                         # NET WEIGHT (lb)
321n * N6,dec                         # LENGTH (in)
322n * N6,dec                         # LENGTH (ft)
323n * N6,dec                         # LENGTH (yd)
324n * N6,dec                         # WIDTH (in)
325n * N6,dec                         # WIDTH (ft)
326n * N6,dec                         # WIDTH (yd)
327n * N6,dec                         # HEIGHT (in)
328n * N6,dec                         # HEIGHT (ft)
329n * N6,dec                         # HEIGHT (yd)
330n * N6,dec    req=00               # GROSS WEIGHT (kg)
331n * N6,dec                         # LENGTH (m), LOG
332n * N6,dec                         # WIDTH (m), LOG
333n * N6,dec                         # HEIGHT (m), LOG
334n * N6,dec                         # AREA (m2), LOG
335n * N6,dec                         # VOLUME (l), LOG
336n * N6,dec                         # VOLUME (m3), LOG
337n * N6,dec                         # KG PER m2
340n * N6,dec                         # GROSS WEIGHT (lb)
341n * N6,dec                         # LENGTH (in), LOG
342n * N6,dec                         # LENGTH (ft), LOG
343n * N6,dec                         # LENGTH (yd), LOG
344n * N6,dec                         # WIDTH (in), LOG
345n * N6,dec                         # WIDTH (ft), LOG
346n * N6,dec                         # WIDTH (yd), LOG
347n * N6,dec                         # HEIGHT (in), LOG
348n * N6,dec                         # HEIGHT (ft), LOG
349n * N6,dec                         # HEIGHT (yd), LOG
350n * N6,dec                         # AREA (in2)
351n * N6,dec                         # AREA (ft2)
352n * N6,dec                         # AREA (yd2)
353n * N6,dec                         # AREA (in2), LOG
354n * N6,dec                         # AREA (ft2), LOG
355n * N6,dec                         # AREA (yd2), LOG
356n * N6,dec                         # NET WEIGHT (tr oz)
360n * N6,dec                         # NET VOLUME (qt)
361n * N6,dec                         # NET VOLUME (gal)
362n * N6,dec                         # VOLUME (qt), LOG
363n * N6,dec                         # VOLUME (gal), LOG
364n * N6,dec                         # VOLUME (in3)
365n * N6,dec                         # VOLUME (ft3)
366n * N6,dec                         # VOLUME (yd3)
367n * N6,dec                         # VOLUME (in3), LOG
368n * N6,dec                         # VOLUME (ft3), LOG
369n * N6,dec                         # VOLUME (yd3), LOG
37     N..8      req=00,02            # COUNT
390n   N..15,dec req=255              # AMOUNT
391n   N3..18                         # AMOUNT (ISO)
392n   N..15,dec req=01               # PRICE
393n   N3..18                         # PRICE (ISO)
394n   N4,dec    req=255              # PRCNT OFF
395n   N6,dec                         # PRICE/UoM
400    X..30                          # ORDER NUMBER
401    X..30                          # GINC
402    N17,csum                       # GSIN
403    X..30                          # ROUTE
410  * N13,csum                       # SHIP TO LOC
411  * N13,csum                       # BILL TO
412  * N13,csum                       # PURCHASE FROM
413  * N13,csum                       # SHIP FOR LOC
414  * N13,csum                       # LOC NO.
415  * N13,csum  req=8020             # PAY TO
416  * N13,csum                       # PROD/SERV LOC
417  * N13,csum                       # PARTY
420    X..20                          # SHIP TO POST
421    X4..12                         # SHIP TO POST (ISO)
422    N3        req=01               # ORIGIN
423    N3..15                         # COUNTRY - INITIAL PROCESS
424    N3                             # COUNTRY - PROCESS
425    N3..15                         # COUNTRY - DISASSEMBLY
426    N3                             # COUNTRY - FULL PROCESS
427    X..3      req=422              # ORIGIN SUBDIVISION
4300   X..35                          # SHIP TO COMP
4301   X..35                          # SHIP TO NAME
4302   X..70                          # SHIP TO ADD1
4303   X..70                          # SHIP TO ADD2
4304   X..70                          # SHIP TO SUB
4305   X..70                          # SHIP TO LOC
4306   X..70                          # SHIP TO REG
4307   X2                             # SHIP TO COUNTRY
4308   X..30                          # SHIP TO PHONE
4309   N20                            # SHIP TO GEO
4310   X..35                          # RTN TO COMP
4311   X..35                          # RTN TO NAME
4312   X..70                          # RTN TO ADD1
4313   X..70                          # RTN TO ADD2
4314   X..70                          # RTN TO SUB
4315   X..70                          # RTN TO LOC
4316   X..70                          # RTN TO REG
4317   X2                             # RTN TO COUNTRY
4318   X..20                          # RTN TO POST
4319   X..30                          # RTN TO PHONE
4320   X..35                          # SRV DESCRIPTION
4321   N1                             # DANGEROUS GOODS
4322   N1                             # AUTH LEAVE
4323   N1                             # SIG REQUIRED
4324   N8,yymmddhh                    # NBEF DEL DT
4325   N8,yymmddhh                    # NAFT DEL DT
4326   N6,yymmdd                      # REL DATE
7001   N13                            # NSN
7002   X..30                          # MEAT CUT
7003   N8,yymmddhh                    # EXPIRY TIME
7004   N..4      req=01               # ACTIVE POTENCY
7005   X..12                          # CATCH AREA
7006   N6,yymmdd                      # FIRST FREEZE DATE
7007   N6..12                         # HARVEST DATE
7008   X..3                           # AQUATIC SPECIES
7009   X..10                          # FISHING GEAR TYPE
7010   X..2                           # PROD METHOD
7020   X..20                          # REFURB LOT
7021   X..20                          # FUNC STAT
7022   X..20                          # REV STAT
7023   X..30                          # GIAI - ASSEMBLY
703n   X4..30                         # PROCESSOR
710    X..20                          # NHRN PZN
711    X..20                          # NHRN CIP
712    X..20                          # NHRN CN
713    X..20                          # NHRN DRN
714    X..20                          # NHRN AIM
8001   N14                            # DIMENSIONS
8002   X..20                          # CMT NO.
8003   X15..30                        # GRAI
8004   X..30                          # GIAI
8005   N6                             # PRICE PER UNIT
8006   N18       req=37               # ITIP
8007   X..34                          # IBAN
8008   N8..12                         # PROD TIME
8010   X..30                          # CPID
8011   N..12     req=8010             # CPID SERIAL
8012   X..20                          # VERSION
8013   X..25                          # GMN
8017   N18,csum                       # GSRN - PROVIDER
8018   N18,csum                       # GSRN - RECIPIENT
8019   N..10                          # SRIN
8020   X..25     req=415              # REF NO.
8026   N18                            # ITIP CONTENT
90     X..30                          # INTERNAL
91     X..90                          # COMPANY INTERNAL 1
92     X..90                          # COMPANY INTERNAL 2
93     X..90                          # COMPANY INTERNAL 3
94     X..90                          # COMPANY INTERNAL 4
95     X..90                          # COMPANY INTERNAL 5
96     X..90                          # COMPANY INTERNAL 6
97     X..90                          # COMPANY INTERNAL 7
98     X..90                          # COMPANY INTERNAL 8
99     X..90                          # COMPANY INTERNAL 9
`

// coreAIs are the AIs that dominate trade item and pharmaceutical labeling;
// they are classed Core. The reconstructor's scoring does not weigh Core
// differently from General.
var coreAIs = map[string]bool{
	"00": true, "01": true, "02": true, "10": true, "11": true,
	"13": true, "15": true, "17": true, "21": true,
}
